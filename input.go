package marquee

import "github.com/hajimehoshi/ebiten/v2"

// pointerSample is one frame's reading of the primary pointer in stage
// coordinates. present is false when the pointer is outside the window or
// no touch is active.
type pointerSample struct {
	x, y    float64
	pressed bool
	present bool
}

// pointerState tracks the primary pointer across frames.
type pointerState struct {
	x, y float64
	down bool
	over *stageBoard
}

// readHostPointer reads the mouse, or the first active touch when one
// exists. Touch takes priority so a tap is not also seen as a cursor.
func readHostPointer() (pointerSample, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return pointerSample{x: float64(tx), y: float64(ty), pressed: true, present: true}, true
	}
	mx, my := ebiten.CursorPosition()
	return pointerSample{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		present: true,
	}, true
}

// processInput is called from Stage.Update. An injected event replaces host
// input for that frame.
func (s *Stage) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.pollHost == nil {
		return
	}
	if sample, ok := s.pollHost(); ok {
		s.processPointer(s.toLogical(sample))
	}
}

// toLogical converts a host sample from device pixels to logical pixels.
// Ebitengine reports cursor positions in screen (device) pixels because
// Layout allocates the screen at the device scale.
func (s *Stage) toLogical(p pointerSample) pointerSample {
	if s.scale > 0 && s.scale != 1 {
		p.x /= s.scale
		p.y /= s.scale
	}
	return p
}

// hitTest returns the topmost board containing (x, y), or nil.
func (s *Stage) hitTest(x, y float64) *stageBoard {
	for i := len(s.boards) - 1; i >= 0; i-- {
		sb := s.boards[i]
		if sb.layer == nil {
			continue
		}
		if sb.bounds().Contains(x, y) {
			return sb
		}
	}
	return nil
}

// processPointer runs the enter/leave and down/move/up transitions for one
// sample and forwards them, in board-local coordinates, to the overlays.
func (s *Stage) processPointer(p pointerSample) {
	ps := &s.pointer

	var target *stageBoard
	if p.present {
		target = s.hitTest(p.x, p.y)
	}

	if target != ps.over {
		if ps.over != nil {
			ps.over.board.Overlay().PointerLeave()
		}
		if target != nil {
			target.board.Overlay().PointerEnter()
		}
		ps.over = target
	}

	pressed := p.pressed && p.present
	switch {
	case pressed && !ps.down:
		ps.down = true
		if target != nil {
			lx, ly := p.x-target.place.X, p.y-target.place.Y
			target.board.Overlay().PointerDown(lx, ly)
		}
	case pressed && ps.down:
		if target != nil && (p.x != ps.x || p.y != ps.y) {
			lx, ly := p.x-target.place.X, p.y-target.place.Y
			target.board.Overlay().PointerMove(lx, ly)
		}
	case !pressed && ps.down:
		ps.down = false
		if target != nil {
			target.board.Overlay().PointerUp()
		}
	}

	if p.present {
		ps.x, ps.y = p.x, p.y
	}
}
