package marquee

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fillCall is one recorded FillCircle.
type fillCall struct {
	x, y, r float64
	c       Color
}

// recordSurface is a Surface that records every call.
type recordSurface struct {
	w, h   float64
	clears []Rect
	fills  []fillCall
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordSurface) Clear(r Rect)             { s.clears = append(s.clears, r) }
func (s *recordSurface) FillCircle(x, y, r float64, c Color) {
	s.fills = append(s.fills, fillCall{x, y, r, c})
}

func (s *recordSurface) reset() {
	s.clears = s.clears[:0]
	s.fills = s.fills[:0]
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestEbitenSurfaceSizeUsesScale(t *testing.T) {
	img := ebiten.NewImage(200, 100)
	s := NewEbitenSurface(img, 2)
	w, h := s.Size()
	assertNear(t, "width", w, 100)
	assertNear(t, "height", h, 50)
	if s.Scale() != 2 {
		t.Errorf("Scale() = %v, want 2", s.Scale())
	}
	if s.Image() != img {
		t.Error("Image() should return the wrapped image")
	}
}

func TestEbitenSurfaceDefaultScale(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(10, 10), 0)
	if s.Scale() != 1 {
		t.Errorf("Scale() = %v, want 1", s.Scale())
	}
}

func TestEbitenSurfaceNilImage(t *testing.T) {
	s := NewEbitenSurface(nil, 1)
	w, h := s.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size() = (%v, %v), want (0, 0)", w, h)
	}
	// Neither call may panic.
	s.Clear(Rect{Width: 10, Height: 10})
	s.FillCircle(5, 5, 2, ColorWhite)
}
