package marquee

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPlacement positions a board on a Stage, in logical pixels.
type BoardPlacement struct {
	X, Y float64
	// Width is the container width the board fits its columns into.
	// Zero or negative means the stage width minus X.
	Width float64
}

// stageBoard is a board plus the offscreen layer it renders into.
type stageBoard struct {
	board   *Board
	place   BoardPlacement
	width   float64 // resolved container width
	layer   *ebiten.Image
	surface *EbitenSurface
	moved   bool
}

// bounds returns the board's interactive rectangle in stage coordinates.
func (sb *stageBoard) bounds() Rect {
	_, h := sb.board.PixelSize()
	return Rect{X: sb.place.X, Y: sb.place.Y, Width: sb.width, Height: h}
}

// Stage is an ebiten.Game hosting an optional flow-field background and any
// number of light boards. It owns the offscreen layers, routes pointer input
// to the boards, and drives both pipelines once per tick.
type Stage struct {
	// ClearColor fills the screen before anything is drawn. A zero alpha
	// clears to transparent.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	field        *FlowField
	fieldLayer   *ebiten.Image
	fieldSurface *EbitenSurface
	boards       []*stageBoard

	width, height float64 // logical
	scale         float64
	scaleFunc     func() float64
	now           func() time.Time

	debug     bool
	lastStats debugStats
	disposed  bool
	showFPS   bool
	fps       *fpsOverlay

	// Input state
	pointer     pointerState
	pollHost    func() (pointerSample, bool)
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	screenshotQueue []string
}

// NewStage creates an empty stage. Add content with SetField and AddBoard.
func NewStage() *Stage {
	return &Stage{
		ScreenshotDir: "screenshots",
		scale:         1,
		scaleFunc:     monitorScale,
		now:           time.Now,
		pollHost:      readHostPointer,
	}
}

// monitorScale returns the device scale factor of the current monitor.
func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if f := m.DeviceScaleFactor(); f > 0 {
			return f
		}
	}
	return 1
}

// SetField sets the background flow field. Nil removes it.
func (s *Stage) SetField(f *FlowField) {
	s.field = f
	if f != nil && s.width > 0 {
		f.Resize(s.width, s.height)
	}
}

// Field returns the background flow field, or nil.
func (s *Stage) Field() *FlowField {
	return s.field
}

// AddBoard places b on the stage. Boards added later draw on top and win
// hit tests.
func (s *Stage) AddBoard(b *Board, place BoardPlacement) {
	sb := &stageBoard{board: b, place: place}
	s.boards = append(s.boards, sb)
	if s.width > 0 {
		s.layoutBoard(sb)
	}
}

// RemoveBoard detaches b and removes it from the stage.
func (s *Stage) RemoveBoard(b *Board) {
	for i, sb := range s.boards {
		if sb.board == b {
			if s.pointer.over == sb {
				s.pointer.over = nil
			}
			s.releaseBoard(sb)
			s.boards = append(s.boards[:i], s.boards[i+1:]...)
			return
		}
	}
}

// Boards returns the boards in draw order. The returned slice is a copy.
func (s *Stage) Boards() []*Board {
	out := make([]*Board, len(s.boards))
	for i, sb := range s.boards {
		out[i] = sb.board
	}
	return out
}

// Size returns the logical stage size.
func (s *Stage) Size() (width, height float64) {
	return s.width, s.height
}

// Scale returns the device pixel ratio in use.
func (s *Stage) Scale() float64 {
	return s.scale
}

// Layout implements ebiten.Game. The screen is allocated in device pixels;
// geometry is recomputed whenever the logical size or scale changes.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := s.scaleFunc()
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != s.width || h != s.height || scale != s.scale {
		s.resize(w, h, scale)
	}
	return int(math.Ceil(w * scale)), int(math.Ceil(h * scale))
}

// Resize sets the logical stage size at the current scale. Ebitengine hosts
// get this from Layout; call it directly when driving a Stage by hand.
func (s *Stage) Resize(width, height float64) {
	s.resize(width, height, s.scale)
}

func (s *Stage) resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.width, s.height, s.scale = width, height, scale

	if s.fieldLayer != nil {
		s.fieldLayer.Deallocate()
		s.fieldLayer, s.fieldSurface = nil, nil
	}
	pw, ph := int(math.Ceil(width*scale)), int(math.Ceil(height*scale))
	if pw > 0 && ph > 0 {
		s.fieldLayer = ebiten.NewImage(pw, ph)
		s.fieldSurface = NewEbitenSurface(s.fieldLayer, scale)
	}
	if s.field != nil {
		s.field.Resize(width, height)
	}
	for _, sb := range s.boards {
		s.layoutBoard(sb)
	}
}

// layoutBoard refits a board to its placement and reallocates its layer.
// Geometry that leaves no visible light detaches the board, which skips
// rendering until the next resize.
func (s *Stage) layoutBoard(sb *stageBoard) {
	s.releaseBoard(sb)

	width := sb.place.Width
	if width <= 0 {
		width = s.width - sb.place.X
	}
	sb.width = max(0, width)
	sb.board.Resize(sb.width)

	bw, bh := sb.board.PixelSize()
	pw, ph := int(math.Ceil(bw*s.scale)), int(math.Ceil(bh*s.scale))
	if pw <= 0 || ph <= 0 {
		return
	}
	sb.layer = ebiten.NewImage(pw, ph)
	sb.surface = NewEbitenSurface(sb.layer, s.scale)
	sb.board.Attach(sb.surface)
}

func (s *Stage) releaseBoard(sb *stageBoard) {
	if sb.board.Surface() == Surface(sb.surface) {
		sb.board.Detach()
	}
	if sb.layer != nil {
		sb.layer.Deallocate()
	}
	sb.layer, sb.surface = nil, nil
}

// Update implements ebiten.Game. It runs the test script, routes input,
// then advances the field and every board. After Dispose it returns
// ebiten.Termination.
func (s *Stage) Update() error {
	if s.disposed {
		return ebiten.Termination
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	if s.field != nil {
		s.field.Update()
	}
	now := s.now()
	for _, sb := range s.boards {
		if sb.board.Update(now) {
			sb.moved = true
		}
	}

	if s.debug {
		stats.updateTime = time.Since(t0)
		s.lastStats = stats
	}
	return nil
}

// Draw implements ebiten.Game. Boards that scrolled since the last frame
// are repainted into their layers before compositing.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}

	stats := s.lastStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toNRGBA())
	} else {
		screen.Clear()
	}

	if s.field != nil && s.fieldSurface != nil {
		s.field.Draw(s.fieldSurface)
		screen.DrawImage(s.fieldLayer, nil)
		stats.points = s.field.PointCount()
	}

	for _, sb := range s.boards {
		if sb.layer == nil {
			continue
		}
		if sb.moved {
			sb.board.Render()
			sb.moved = false
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(sb.place.X*s.scale, sb.place.Y*s.scale)
		screen.DrawImage(sb.layer, &op)
		stats.lights += sb.board.Columns() * sb.board.Rows()
	}

	if s.showFPS {
		s.drawFPS(screen)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables per-frame timing stats, logged at
// debug level through Logger.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetShowFPS toggles the FPS/TPS overlay in the top-left corner.
func (s *Stage) SetShowFPS(enabled bool) {
	s.showFPS = enabled
}

// Dispose detaches every board, releases the offscreen layers, and makes
// the next Update return ebiten.Termination.
func (s *Stage) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, sb := range s.boards {
		s.releaseBoard(sb)
	}
	if s.fieldLayer != nil {
		s.fieldLayer.Deallocate()
		s.fieldLayer, s.fieldSurface = nil, nil
	}
	if s.fps != nil {
		s.fps.dispose()
		s.fps = nil
	}
	s.pointer = pointerState{}
	s.injectQueue = nil
	s.screenshotQueue = nil
}

// IsDisposed reports whether Dispose has been called.
func (s *Stage) IsDisposed() bool {
	return s.disposed
}
