package marquee

import (
	"math"
	"time"
)

// FrameSynced as a BoardConfig.Interval advances the scroll once per Update.
const FrameSynced time.Duration = 0

// BoardConfig configures a light board. Use DefaultBoardConfig as a starting
// point; NewBoard only repairs values that cannot work (non-positive rows or
// light size, negative gap).
type BoardConfig struct {
	// Text is the scrolling message.
	Text string
	// Rows is the board height in lights. Rows below the font height are
	// raised to the font height.
	Rows int
	// LightSize is the diameter of one light in pixels.
	LightSize float64
	// Gap is the spacing between lights in pixels.
	Gap float64
	// Interval throttles scrolling to one column per Interval of wall-clock
	// time. FrameSynced scrolls one column per Update.
	Interval time.Duration
	// Font selects the glyph set. Nil means DefaultFont.
	Font *Font
	// Palette colors; zero entries fall back to DefaultPalette.
	Palette Palette
	// DisableDrawing makes every pointer handler inert except hover tracking.
	DisableDrawing bool
	// DisableHoverPause keeps the board scrolling while hovered.
	DisableHoverPause bool
	// Paint is the cell value written by the draw overlay. An internally
	// owned zero value means CellAccent.
	Paint Binding[Cell]
	// Hover is the pointer-inside flag that pauses scrolling.
	Hover Binding[bool]
}

// DefaultBoardConfig returns the stock board geometry: five rows of 4px
// lights with a 1px gap, scrolling every 10ms.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Rows:      5,
		LightSize: 4,
		Gap:       1,
		Interval:  10 * time.Millisecond,
		Font:      DefaultFont,
		Palette:   DefaultPalette,
	}
}

// Board is a scrolling dot-matrix display. It owns the compiled pattern,
// the scroll offset, and the visible column count, and paints the visible
// window onto an attached Surface.
//
// Board is not safe for concurrent use: Update, Render and the pointer
// handlers must run on one goroutine.
type Board struct {
	config      BoardConfig
	font        *Font
	pattern     *Pattern
	offset      int
	columns     int
	lastAdvance time.Time
	surface     Surface
	overlay     *DrawOverlay
	sink        EventSink
	disposed    bool
}

// NewBoard creates a board and compiles its text. The board has zero visible
// columns until the first Resize.
func NewBoard(cfg BoardConfig) *Board {
	if cfg.Rows <= 0 {
		cfg.Rows = 5
	}
	if cfg.LightSize <= 0 {
		cfg.LightSize = 4
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	if cfg.Font == nil {
		cfg.Font = DefaultFont
	}
	cfg.Palette = cfg.Palette.Merge(DefaultPalette)
	if cfg.Paint.Owner == OwnerInternal && cfg.Paint.Value == CellEmpty {
		cfg.Paint.Value = CellAccent
	}

	b := &Board{config: cfg, font: cfg.Font}
	b.pattern = Compile(cfg.Text, cfg.Rows, 0, b.font)
	b.overlay = newDrawOverlay(b, cfg)
	return b
}

// Config returns the effective configuration.
func (b *Board) Config() BoardConfig {
	return b.config
}

// Attach sets the surface the board renders into and redraws it.
func (b *Board) Attach(s Surface) {
	b.surface = s
	b.Render()
}

// Detach drops the surface. Rendering becomes a no-op until reattached.
func (b *Board) Detach() {
	b.surface = nil
}

// Surface returns the attached surface, or nil.
func (b *Board) Surface() Surface {
	return b.surface
}

// Overlay returns the board's draw overlay.
func (b *Board) Overlay() *DrawOverlay {
	return b.overlay
}

// Pattern returns the board's pattern. Mutate it through SetCell so the
// surface stays in sync.
func (b *Board) Pattern() *Pattern {
	return b.pattern
}

// Text returns the current message.
func (b *Board) Text() string {
	return b.config.Text
}

// Font returns the current font.
func (b *Board) Font() *Font {
	return b.font
}

// Rows returns the number of light rows.
func (b *Board) Rows() int {
	return b.pattern.Rows()
}

// Columns returns the number of visible light columns.
func (b *Board) Columns() int {
	return b.columns
}

// Offset returns the scroll offset, always in [0, Pattern().Cols()).
func (b *Board) Offset() int {
	return b.offset
}

// Pitch returns the distance between neighbouring light centers.
func (b *Board) Pitch() float64 {
	return b.config.LightSize + b.config.Gap
}

// PixelSize returns the size in pixels of the visible board.
func (b *Board) PixelSize() (width, height float64) {
	p := b.Pitch()
	return float64(b.columns) * p, float64(b.Rows()) * p
}

// Resize recomputes the visible column count for a container width and
// widens the pattern when needed. Widening keeps drawn edits.
func (b *Board) Resize(width float64) {
	cols := 0
	if width > 0 {
		cols = int(math.Floor(width / b.Pitch()))
	}
	b.columns = cols
	b.pattern.Extend(2 * cols)
	b.offset %= b.pattern.Cols()
}

// SetText replaces the message and recompiles. Drawn edits are discarded.
func (b *Board) SetText(text string) {
	if text == b.config.Text {
		return
	}
	b.config.Text = text
	b.recompile()
}

// SetFont replaces the font and recompiles. Nil means DefaultFont.
func (b *Board) SetFont(f *Font) {
	if f == nil {
		f = DefaultFont
	}
	if f == b.font {
		return
	}
	b.font = f
	b.config.Font = f
	b.recompile()
}

// SetRows changes the board height and recompiles.
func (b *Board) SetRows(rows int) {
	if rows <= 0 || rows == b.config.Rows {
		return
	}
	b.config.Rows = rows
	b.recompile()
}

// SetInterval switches between frame-synced and throttled scrolling.
func (b *Board) SetInterval(d time.Duration) {
	b.config.Interval = d
	b.lastAdvance = time.Time{}
}

func (b *Board) recompile() {
	b.pattern = Compile(b.config.Text, b.config.Rows, b.columns, b.font)
	b.offset %= b.pattern.Cols()
	b.overlay.reset()
	b.Render()
}

// Paused reports whether hover currently suspends scrolling.
func (b *Board) Paused() bool {
	return !b.config.DisableHoverPause && b.overlay.Hovered()
}

// Update advances the scroll for one tick and reports whether it moved.
// Frame-synced boards advance on every call; throttled boards advance when
// at least Interval has elapsed since the last advance.
func (b *Board) Update(now time.Time) bool {
	if b.disposed || b.Paused() {
		return false
	}
	if b.config.Interval > FrameSynced {
		if !b.lastAdvance.IsZero() && now.Sub(b.lastAdvance) < b.config.Interval {
			return false
		}
		b.lastAdvance = now
	}
	b.Advance()
	return true
}

// Advance moves the scroll offset by one column, wrapping at the pattern width.
func (b *Board) Advance() {
	b.offset = (b.offset + 1) % b.pattern.Cols()
}

// CellAt returns the cell shown at visible position (row, col).
func (b *Board) CellAt(row, col int) Cell {
	return b.pattern.At(row, (col+b.offset)%b.pattern.Cols())
}

// SetCell writes c at (row, patternCol) in pattern space. When the cell
// changes and is inside the visible window, only that light is redrawn.
// It reports whether the cell changed.
func (b *Board) SetCell(row, patternCol int, c Cell) bool {
	if !b.pattern.Set(row, patternCol, c) {
		return false
	}
	cols := b.pattern.Cols()
	visible := ((patternCol-b.offset)%cols + cols) % cols
	if visible < b.columns {
		b.paintLight(row, visible, c, true)
	}
	return true
}

// Render repaints the whole visible window. It is a no-op without a surface
// or with non-positive geometry.
func (b *Board) Render() {
	if b.disposed || b.surface == nil || b.columns <= 0 || b.Rows() <= 0 {
		return
	}
	w, h := b.PixelSize()
	b.surface.Clear(Rect{Width: w, Height: h})

	cols := b.pattern.Cols()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.columns; col++ {
			b.paintLight(row, col, b.pattern.At(row, (col+b.offset)%cols), false)
		}
	}
}

// paintLight draws the light at visible position (row, col). Translucent
// colors accumulate, so a single-light redraw clears its square first.
func (b *Board) paintLight(row, col int, c Cell, clear bool) {
	if b.surface == nil {
		return
	}
	pitch := b.Pitch()
	size := b.config.LightSize
	x := float64(col) * pitch
	y := float64(row) * pitch
	if clear {
		b.surface.Clear(Rect{X: x, Y: y, Width: size, Height: size})
	}
	half := size / 2
	b.surface.FillCircle(x+half, y+half, half, b.config.Palette.For(c))
}

// Dispose detaches the surface and stops all further updates.
func (b *Board) Dispose() {
	b.disposed = true
	b.surface = nil
	b.overlay.reset()
}

// IsDisposed reports whether Dispose has been called.
func (b *Board) IsDisposed() bool {
	return b.disposed
}
