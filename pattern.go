package marquee

import (
	"strings"
	"unicode"
)

// DefaultMinSpacing is the number of spaces every whitespace run is widened
// to by NormalizeText.
const DefaultMinSpacing = 3

// Pattern is a rows×cols grid of cells stored row-major. A Board owns
// exactly one Pattern; only the draw overlay mutates it in place.
type Pattern struct {
	rows, cols int
	cells      []Cell
}

// NewPattern creates a blank pattern. Non-positive dimensions are raised to 1.
func NewPattern(rows, cols int) *Pattern {
	rows = max(1, rows)
	cols = max(1, cols)
	return &Pattern{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns the row count.
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the column count.
func (p *Pattern) Cols() int { return p.cols }

// At returns the cell at (row, col). Out-of-range coordinates return CellEmpty.
func (p *Pattern) At(row, col int) Cell {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return CellEmpty
	}
	return p.cells[row*p.cols+col]
}

// Set writes c at (row, col) and reports whether the cell changed.
// Out-of-range coordinates are ignored.
func (p *Pattern) Set(row, col int, c Cell) bool {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return false
	}
	i := row*p.cols + col
	if p.cells[i] == c {
		return false
	}
	p.cells[i] = c
	return true
}

// Clone returns a deep copy.
func (p *Pattern) Clone() *Pattern {
	cp := &Pattern{rows: p.rows, cols: p.cols, cells: make([]Cell, len(p.cells))}
	copy(cp.cells, p.cells)
	return cp
}

// Equal reports whether both patterns have identical size and cells.
func (p *Pattern) Equal(o *Pattern) bool {
	if p.rows != o.rows || p.cols != o.cols {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Extend doubles the pattern horizontally until it is at least minCols wide.
// Doubling keeps the content periodic, so scroll offsets stay meaningful and
// existing edits are carried into every copy.
func (p *Pattern) Extend(minCols int) {
	if p.cols >= minCols {
		return
	}
	cols := p.cols
	for cols < minCols {
		cols *= 2
	}
	cells := make([]Cell, p.rows*cols)
	for r := 0; r < p.rows; r++ {
		src := p.cells[r*p.cols : (r+1)*p.cols]
		dst := cells[r*cols : (r+1)*cols]
		for off := 0; off < cols; off += p.cols {
			copy(dst[off:], src)
		}
	}
	p.cols = cols
	p.cells = cells
}

// String renders the pattern one line per row using ' ' (empty), '.' (dim),
// '+' (accent) and '#' (bright). Useful in tests and debug output.
func (p *Pattern) String() string {
	var b strings.Builder
	b.Grow((p.cols + 1) * p.rows)
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			switch p.At(r, c) {
			case CellDim:
				b.WriteByte('.')
			case CellAccent:
				b.WriteByte('+')
			case CellBright:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// NormalizeText trims and upper-cases s, pads it with a space on each side,
// and replaces every whitespace run with exactly minSpacing spaces so words
// and the scroll seam stay visually separated. minSpacing < 1 means 1.
func NormalizeText(s string, minSpacing int) string {
	minSpacing = max(1, minSpacing)
	padded := " " + strings.ToUpper(strings.TrimSpace(s)) + " "
	gap := strings.Repeat(" ", minSpacing)

	var b strings.Builder
	b.Grow(len(padded) + 2*minSpacing)
	inSpace := false
	for _, r := range padded {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteString(gap)
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Compile rasterizes text into a Pattern exactly rows tall and at least
// 2×columns wide.
//
// Glyphs are upscaled by max(1, rows/font.Height()) with nearest-neighbour
// replication; lit glyph pixels become CellBright and glyph background
// becomes CellDim. Runes missing from the font render as a space. The text
// band is centered vertically with CellEmpty padding, the odd row going to
// the bottom. Rows below the font height are raised to the font height.
// A nil font means DefaultFont.
func Compile(text string, rows, columns int, font *Font) *Pattern {
	if font == nil {
		font = DefaultFont
	}
	if rows < font.Height() {
		Logger().Warn("board rows below font height; clamping",
			"rows", rows, "font", font.Name(), "height", font.Height())
		rows = font.Height()
	}
	scale := max(1, rows/font.Height())
	bandRows := font.Height() * scale

	normalized := NormalizeText(text, DefaultMinSpacing)
	glyphs := make([]Glyph, 0, len(normalized))
	width := 0
	for _, r := range normalized {
		g := font.Lookup(r)
		glyphs = append(glyphs, g)
		width += g.Width() * scale
	}
	if width == 0 {
		return NewPattern(rows, 1)
	}

	p := &Pattern{rows: rows, cols: width, cells: make([]Cell, rows*width)}
	top := (rows - bandRows) / 2

	x := 0
	for _, g := range glyphs {
		for gr := 0; gr < g.Height(); gr++ {
			for gc := 0; gc < g.Width(); gc++ {
				c := CellDim
				if g.Filled(gr, gc) {
					c = CellBright
				}
				for dy := 0; dy < scale; dy++ {
					row := top + gr*scale + dy
					base := row*width + x + gc*scale
					for dx := 0; dx < scale; dx++ {
						p.cells[base+dx] = c
					}
				}
			}
		}
		x += g.Width() * scale
	}

	p.Extend(2 * columns)
	return p
}
