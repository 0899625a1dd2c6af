package marquee

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in      string
		spacing int
		want    string
	}{
		{"hello", 3, "   HELLO   "},
		{"  hello   world ", 3, "   HELLO   WORLD   "},
		{"a\tb\nc", 3, "   A   B   C   "},
		{"", 3, "   "},
		{"a  b", 1, " A B "},
		{"ab", 0, " AB "},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in, tt.spacing); got != tt.want {
			t.Errorf("NormalizeText(%q, %d) = %q, want %q", tt.in, tt.spacing, got, tt.want)
		}
	}
}

// expectGlyph checks that p reproduces glyph g at column col with band top
// row top and scale 1.
func expectGlyph(t *testing.T, p *Pattern, g Glyph, top, col int, name string) {
	t.Helper()
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			want := CellDim
			if g.Filled(r, c) {
				want = CellBright
			}
			if got := p.At(top+r, col+c); got != want {
				t.Errorf("%s (%d, %d) = %v, want %v", name, r, c, got, want)
			}
		}
	}
}

func TestCompileAB(t *testing.T) {
	p := Compile("AB", 5, 0, DefaultFont)
	if p.Rows() != 5 {
		t.Fatalf("Rows() = %d, want 5", p.Rows())
	}

	space, _ := DefaultFont.Glyph(' ')
	a, _ := DefaultFont.Glyph('A')
	b, _ := DefaultFont.Glyph('B')
	lead := DefaultMinSpacing * space.Width()
	if want := 2*lead + a.Width() + b.Width(); p.Cols() != want {
		t.Fatalf("Cols() = %d, want %d", p.Cols(), want)
	}

	// Leading spacing carries no lit pixel.
	for r := 0; r < 5; r++ {
		for c := 0; c < lead; c++ {
			if p.At(r, c) != CellDim {
				t.Fatalf("spacing cell (%d, %d) = %v, want dim", r, c, p.At(r, c))
			}
		}
	}
	expectGlyph(t, p, a, 0, lead, "A")
	expectGlyph(t, p, b, 0, lead+a.Width(), "B")

	// Trailing spacing closes the loop back to the start.
	for c := lead + a.Width() + b.Width(); c < p.Cols(); c++ {
		for r := 0; r < 5; r++ {
			if p.At(r, c) == CellBright {
				t.Fatalf("trailing cell (%d, %d) is bright", r, c)
			}
		}
	}
}

func TestCompileStringForm(t *testing.T) {
	p := Compile("I", 5, 0, DefaultFont)
	lines := strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	// I is "###.." on its first row, after 18 columns of spacing.
	if got := lines[0][18:23]; got != "###.." {
		t.Errorf("row 0 of I = %q, want %q", got, "###..")
	}
	if got := lines[1][18:23]; got != ".#..." {
		t.Errorf("row 1 of I = %q, want %q", got, ".#...")
	}
}

func TestCompilePadding(t *testing.T) {
	tests := []struct {
		rows        int
		top, bottom int
	}{
		{5, 0, 0},
		{6, 0, 1}, // odd remainder goes to the bottom
		{7, 1, 1}, // even remainder splits evenly
		{8, 1, 2},
		{12, 1, 1}, // scale 2, band 10
		{13, 1, 2},
	}
	for _, tt := range tests {
		p := Compile("A", tt.rows, 0, DefaultFont)
		if p.Rows() != tt.rows {
			t.Errorf("rows=%d: Rows() = %d", tt.rows, p.Rows())
			continue
		}
		top, bottom := emptyRows(p)
		if top != tt.top || bottom != tt.bottom {
			t.Errorf("rows=%d: padding = (%d, %d), want (%d, %d)", tt.rows, top, bottom, tt.top, tt.bottom)
		}
	}
}

// emptyRows counts fully empty rows at the top and bottom of p.
func emptyRows(p *Pattern) (top, bottom int) {
	isEmpty := func(r int) bool {
		for c := 0; c < p.Cols(); c++ {
			if p.At(r, c) != CellEmpty {
				return false
			}
		}
		return true
	}
	for top < p.Rows() && isEmpty(top) {
		top++
	}
	for bottom < p.Rows() && isEmpty(p.Rows()-1-bottom) {
		bottom++
	}
	return top, bottom
}

func TestCompileScale(t *testing.T) {
	p := Compile("A", 10, 0, DefaultFont)
	a, _ := DefaultFont.Glyph('A')
	lead := 2 * DefaultMinSpacing * 6 // three space glyphs at scale 2
	if p.Cols() != 2*lead+2*a.Width() {
		t.Fatalf("Cols() = %d, want %d", p.Cols(), 2*lead+2*a.Width())
	}
	for r := 0; r < 10; r++ {
		for c := 0; c < 2*a.Width(); c++ {
			want := CellDim
			if a.Filled(r/2, c/2) {
				want = CellBright
			}
			if got := p.At(r, lead+c); got != want {
				t.Errorf("scaled A (%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestCompileScaleFloors(t *testing.T) {
	// 14 rows: scale 2, band 10, padding 2 top and 2 bottom.
	p := Compile("A", 14, 0, DefaultFont)
	top, bottom := emptyRows(p)
	if top != 2 || bottom != 2 {
		t.Errorf("padding = (%d, %d), want (2, 2)", top, bottom)
	}
}

func TestCompileWidthCoversColumns(t *testing.T) {
	for _, cols := range []int{0, 1, 24, 25, 100, 1000} {
		p := Compile("AB", 5, cols, DefaultFont)
		if p.Cols() < 2*cols {
			t.Errorf("columns=%d: Cols() = %d, want >= %d", cols, p.Cols(), 2*cols)
		}
	}
}

func TestCompileDoublingIsPeriodic(t *testing.T) {
	base := Compile("AB", 5, 0, DefaultFont)
	wide := Compile("AB", 5, 100, DefaultFont)
	if wide.Cols()%base.Cols() != 0 {
		t.Fatalf("Cols() = %d, not a multiple of %d", wide.Cols(), base.Cols())
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < wide.Cols(); c++ {
			if wide.At(r, c) != base.At(r, c%base.Cols()) {
				t.Fatalf("cell (%d, %d) breaks the period", r, c)
			}
		}
	}
}

func TestCompileIdempotent(t *testing.T) {
	a := Compile("Hello World", 7, 40, DefaultFont)
	b := Compile("Hello World", 7, 40, DefaultFont)
	if !a.Equal(b) {
		t.Error("compiling the same input twice should give equal patterns")
	}
}

func TestCompileMissingRuneIsSpace(t *testing.T) {
	p := Compile("~", 5, 0, DefaultFont)
	space, _ := DefaultFont.Glyph(' ')
	if want := (2*DefaultMinSpacing + 1) * space.Width(); p.Cols() != want {
		t.Errorf("Cols() = %d, want %d", p.Cols(), want)
	}
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			if p.At(r, c) == CellBright {
				t.Fatalf("cell (%d, %d) is bright", r, c)
			}
		}
	}
}

func TestCompileEmptyText(t *testing.T) {
	p := Compile("", 5, 0, DefaultFont)
	if p.Cols() == 0 || p.Rows() != 5 {
		t.Errorf("empty text: %dx%d", p.Rows(), p.Cols())
	}
}

func TestCompileDegenerateFont(t *testing.T) {
	f := newFont("zero", map[rune][]string{' ': {"", "", ""}})
	p := Compile("anything", 3, 0, f)
	if p.Rows() != 3 || p.Cols() != 1 {
		t.Fatalf("degenerate compile = %dx%d, want 3x1", p.Rows(), p.Cols())
	}
	for r := 0; r < 3; r++ {
		if p.At(r, 0) != CellEmpty {
			t.Errorf("cell (%d, 0) = %v, want empty", r, p.At(r, 0))
		}
	}
}

func TestCompileClampsRows(t *testing.T) {
	p := Compile("A", 3, 0, DefaultFont)
	if p.Rows() != DefaultFont.Height() {
		t.Errorf("Rows() = %d, want %d", p.Rows(), DefaultFont.Height())
	}
}

func TestCompileNilFont(t *testing.T) {
	a := Compile("AB", 5, 0, nil)
	b := Compile("AB", 5, 0, DefaultFont)
	if !a.Equal(b) {
		t.Error("nil font should compile with DefaultFont")
	}
}

func TestPatternSetAndAt(t *testing.T) {
	p := NewPattern(3, 4)
	if !p.Set(1, 2, CellAccent) {
		t.Error("Set should report a change")
	}
	if p.Set(1, 2, CellAccent) {
		t.Error("Set of the same value should report no change")
	}
	if p.At(1, 2) != CellAccent {
		t.Errorf("At(1, 2) = %v, want accent", p.At(1, 2))
	}
	if p.Set(3, 0, CellBright) || p.Set(0, -1, CellBright) {
		t.Error("out-of-range Set should be ignored")
	}
	if p.At(-1, 0) != CellEmpty || p.At(0, 4) != CellEmpty {
		t.Error("out-of-range At should return CellEmpty")
	}
}

func TestNewPatternMinimumSize(t *testing.T) {
	p := NewPattern(0, -2)
	if p.Rows() != 1 || p.Cols() != 1 {
		t.Errorf("NewPattern(0, -2) = %dx%d, want 1x1", p.Rows(), p.Cols())
	}
}

func TestPatternExtendKeepsEdits(t *testing.T) {
	p := NewPattern(2, 3)
	p.Set(0, 1, CellAccent)
	p.Extend(10)
	if p.Cols() != 12 {
		t.Fatalf("Cols() = %d, want 12", p.Cols())
	}
	for _, c := range []int{1, 4, 7, 10} {
		if p.At(0, c) != CellAccent {
			t.Errorf("At(0, %d) = %v, want accent", c, p.At(0, c))
		}
	}
	p.Extend(5)
	if p.Cols() != 12 {
		t.Errorf("Extend to a smaller width changed Cols() to %d", p.Cols())
	}
}

func TestPatternCloneIndependent(t *testing.T) {
	p := NewPattern(2, 2)
	cp := p.Clone()
	cp.Set(0, 0, CellBright)
	if p.At(0, 0) != CellEmpty {
		t.Error("mutating a clone should not touch the original")
	}
	if p.Equal(cp) {
		t.Error("Equal should see the difference")
	}
	if p.Equal(NewPattern(2, 3)) {
		t.Error("patterns of different sizes are not equal")
	}
}
