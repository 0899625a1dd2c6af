package marquee

// syntheticPointerEvent is one queued pointer sample. Coordinates are
// logical stage pixels, the same space boards are placed in.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	leave   bool
}

// InjectPress queues a pointer press at (x, y). Queued events are consumed
// one per frame by Update and replace host input for that frame.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the button held. Use it between
// InjectPress and InjectRelease to draw a stroke.
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a move to (x, y) with the button up.
func (s *Stage) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (s *Stage) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full stroke: press at (fromX, fromY), frames-2
// evenly spaced moves ending at (toX, toY), and a release. The sequence
// consumes frames frames; the minimum is 2, which presses and releases
// without moving.
func (s *Stage) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and feeds it through
// processPointer. It reports whether an event was consumed.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(pointerSample{
		x:       evt.x,
		y:       evt.y,
		pressed: evt.pressed,
		present: !evt.leave,
	})
	return true
}
