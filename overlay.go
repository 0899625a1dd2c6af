package marquee

import "math"

type drawPhase uint8

const (
	phaseIdle drawPhase = iota
	phaseDrawing
)

// DrawOverlay turns pointer input into freehand strokes on a Board.
//
// It is a two-phase machine: Idle → PointerDown → Drawing → PointerUp or
// PointerLeave → Idle. While Drawing, each PointerMove rasterizes a line
// from the previous sample with Line, maps every pixel to a light, and
// writes the paint value through Board.SetCell. Hover is tracked separately
// and pauses the board while the pointer is inside.
//
// Coordinates are board-local pixels.
type DrawOverlay struct {
	board    *Board
	phase    drawPhase
	lastX    int
	lastY    int
	hasLast  bool
	disabled bool
	paint    *State[Cell]
	hover    *State[bool]
}

func newDrawOverlay(b *Board, cfg BoardConfig) *DrawOverlay {
	return &DrawOverlay{
		board:    b,
		disabled: cfg.DisableDrawing,
		paint:    NewState(cfg.Paint),
		hover:    NewState(cfg.Hover),
	}
}

// Paint returns the paint value state.
func (o *DrawOverlay) Paint() *State[Cell] {
	return o.paint
}

// Hover returns the hover state.
func (o *DrawOverlay) Hover() *State[bool] {
	return o.hover
}

// Hovered reports the effective hover flag.
func (o *DrawOverlay) Hovered() bool {
	return o.hover.Get()
}

// Drawing reports whether a stroke is in progress.
func (o *DrawOverlay) Drawing() bool {
	return o.phase == phaseDrawing
}

// Disabled reports whether drawing is switched off.
func (o *DrawOverlay) Disabled() bool {
	return o.disabled
}

// SetDisabled switches drawing on or off. Disabling ends any active stroke.
func (o *DrawOverlay) SetDisabled(disabled bool) {
	o.disabled = disabled
	if disabled {
		o.reset()
	}
}

// PointerEnter marks the pointer as inside the board.
func (o *DrawOverlay) PointerEnter() {
	o.hover.Set(true)
	o.board.emit(BoardEvent{Type: EventPointerEnter})
}

// PointerLeave marks the pointer as outside and ends any stroke.
func (o *DrawOverlay) PointerLeave() {
	o.hover.Set(false)
	o.reset()
	o.board.emit(BoardEvent{Type: EventPointerLeave})
}

// PointerDown starts a stroke and paints the light under (x, y).
func (o *DrawOverlay) PointerDown(x, y float64) {
	if o.disabled {
		return
	}
	px, py := pixel(x), pixel(y)
	o.phase = phaseDrawing
	o.board.emit(BoardEvent{Type: EventStrokeStart, X: x, Y: y})
	o.segment(px, py, px, py)
	o.lastX, o.lastY, o.hasLast = px, py, true
}

// PointerMove extends the stroke to (x, y). Ignored while Idle.
func (o *DrawOverlay) PointerMove(x, y float64) {
	if o.disabled || o.phase != phaseDrawing {
		return
	}
	px, py := pixel(x), pixel(y)
	if o.hasLast {
		o.segment(o.lastX, o.lastY, px, py)
	} else {
		o.segment(px, py, px, py)
	}
	o.lastX, o.lastY, o.hasLast = px, py, true
}

// PointerUp ends the stroke.
func (o *DrawOverlay) PointerUp() {
	o.reset()
}

func (o *DrawOverlay) reset() {
	if o.phase == phaseDrawing {
		o.board.emit(BoardEvent{Type: EventStrokeEnd})
	}
	o.phase = phaseIdle
	o.hasLast = false
}

// segment paints every light the pixel line from (x0, y0) to (x1, y1) crosses.
func (o *DrawOverlay) segment(x0, y0, x1, y1 int) {
	Line(x0, y0, x1, y1, o.plot)
}

// plot maps a board pixel to a light and paints it. Pixels outside the
// visible board are skipped individually.
func (o *DrawOverlay) plot(px, py int) {
	b := o.board
	pitch := b.Pitch()
	col := int(math.Floor(float64(px) / pitch))
	row := int(math.Floor(float64(py) / pitch))
	if row < 0 || row >= b.Rows() || col < 0 || col >= b.Columns() {
		return
	}
	pc := (col + b.Offset()) % b.Pattern().Cols()
	c := o.paint.Get()
	if b.SetCell(row, pc, c) {
		b.emit(BoardEvent{Type: EventPaint, Row: row, Col: pc, Cell: c})
	}
}

// Line calls plot for each lattice point of the Bresenham line from
// (x0, y0) to (x1, y1), endpoints included.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func pixel(v float64) int {
	return int(math.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
