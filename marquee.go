package marquee

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default dot color.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toNRGBA converts c to a straight-alpha 8-bit color, clamping each component.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the left and top edges are inside; the right and bottom edges
// belong to the neighbouring rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Cell is the intensity state of one light on the board. The same four
// states are used by glyphs, compiled patterns, and the draw overlay.
type Cell uint8

const (
	CellEmpty  Cell = iota // unlit background
	CellDim                // glyph background inside the text band
	CellAccent             // light painted by the draw overlay
	CellBright             // lit glyph pixel
)

// String returns the lower-case name of the cell state.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellDim:
		return "dim"
	case CellAccent:
		return "accent"
	case CellBright:
		return "bright"
	default:
		return "invalid"
	}
}

// Valid reports whether c is one of the four defined states.
func (c Cell) Valid() bool {
	return c <= CellBright
}
