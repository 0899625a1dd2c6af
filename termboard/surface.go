// Package termboard renders marquee boards in a terminal with tcell, one
// terminal cell per light.
package termboard

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/marquee"
)

// LightRune is drawn for every light.
const LightRune = '●'

// Surface is a marquee.Surface over a rectangle of terminal cells. Logical
// pixels map to cells through pitch, so a board with pitch p paints its
// light at column c into terminal column X+c.
//
// Terminals have no alpha channel: light colors are blended over
// Background before they reach the screen.
type Surface struct {
	screen     tcell.Screen
	x, y       int
	cols, rows int
	pitch      float64
	background colorful.Color
}

// NewSurface creates a surface covering cols×rows cells with its top-left
// corner at (x, y). pitch <= 0 means 1.
func NewSurface(screen tcell.Screen, x, y, cols, rows int, pitch float64) *Surface {
	if pitch <= 0 {
		pitch = 1
	}
	return &Surface{
		screen: screen,
		x:      x, y: y,
		cols: max(0, cols), rows: max(0, rows),
		pitch:      pitch,
		background: colorful.Color{},
	}
}

// SetBackground sets the color lights are blended over and that Clear paints.
func (s *Surface) SetBackground(c marquee.Color) {
	s.background = colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Origin returns the terminal cell of the surface's top-left corner.
func (s *Surface) Origin() (x, y int) {
	return s.x, s.y
}

// Size returns the logical size in board pixels.
func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * s.pitch, float64(s.rows) * s.pitch
}

// Clear paints every cell touched by r with the background.
func (s *Surface) Clear(r marquee.Rect) {
	if s.screen == nil || r.Empty() {
		return
	}
	c0 := max(0, int(math.Floor(r.X/s.pitch)))
	r0 := max(0, int(math.Floor(r.Y/s.pitch)))
	c1 := min(s.cols, int(math.Ceil((r.X+r.Width)/s.pitch)))
	r1 := min(s.rows, int(math.Ceil((r.Y+r.Height)/s.pitch)))
	style := tcell.StyleDefault.Background(toTcell(s.background))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetContent(s.x+col, s.y+row, ' ', nil, style)
		}
	}
}

// FillCircle lights the cell containing the circle's center. The radius
// only gates zero-sized circles; a light never spans more than one cell.
func (s *Surface) FillCircle(x, y, radius float64, c marquee.Color) {
	if s.screen == nil || radius <= 0 {
		return
	}
	col := int(math.Floor(x / s.pitch))
	row := int(math.Floor(y / s.pitch))
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	fg := s.Blend(c)
	style := tcell.StyleDefault.
		Foreground(toTcell(fg)).
		Background(toTcell(s.background))
	s.screen.SetContent(s.x+col, s.y+row, LightRune, nil, style)
}

// Blend returns c composited over the background.
func (s *Surface) Blend(c marquee.Color) colorful.Color {
	a := math.Max(0, math.Min(1, c.A))
	src := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	return s.background.BlendRgb(src, a)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
