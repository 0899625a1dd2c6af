package marquee

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}},
		{"white", Color{1, 1, 1, 1}},
		{" White ", Color{1, 1, 1, 1}},
		{"white@0.15", Color{1, 1, 1, 0.15}},
		{"#00ff00@0.5", Color{0, 1, 0, 0.5}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if !colorNear(got, tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"#zzz", "white@2", "white@x", "#ff0000gg"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
	_, err := ParseColor("notacolor")
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ParseColor(notacolor) err = %v, want ErrUnknownColor", err)
	}
}

func TestPaletteMerge(t *testing.T) {
	p := Palette{Accent: Color{1, 0, 0, 1}}.Merge(DefaultPalette)
	if p.Accent != (Color{1, 0, 0, 1}) {
		t.Errorf("Accent = %v, want red", p.Accent)
	}
	if p.Dim != DefaultPalette.Dim || p.Background != DefaultPalette.Background {
		t.Error("zero entries should come from the base palette")
	}
}

func TestPaletteFor(t *testing.T) {
	p := DefaultPalette
	tests := []struct {
		c    Cell
		want Color
	}{
		{CellEmpty, p.Background},
		{CellDim, p.Dim},
		{CellAccent, p.Accent},
		{CellBright, p.Bright},
		{Cell(9), p.Background},
	}
	for _, tt := range tests {
		if got := p.For(tt.c); got != tt.want {
			t.Errorf("For(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
