package marquee

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the write-only raster sink both pipelines draw into.
// Coordinates are logical pixels; implementations apply any device scale.
type Surface interface {
	// Size returns the logical size of the drawable area.
	Size() (width, height float64)
	// Clear resets the given region to transparent.
	Clear(r Rect)
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c Color)
}

// EbitenSurface draws onto an ebiten.Image. Scale is the device pixel ratio:
// logical coordinates are multiplied by it before reaching the image.
type EbitenSurface struct {
	img   *ebiten.Image
	scale float64
}

// NewEbitenSurface wraps img. A scale <= 0 is treated as 1.
func NewEbitenSurface(img *ebiten.Image, scale float64) *EbitenSurface {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenSurface{img: img, scale: scale}
}

// Image returns the wrapped image.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

// Scale returns the device pixel ratio.
func (s *EbitenSurface) Scale() float64 {
	return s.scale
}

// Size returns the image size divided by the device scale.
func (s *EbitenSurface) Size() (float64, float64) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// Clear clears the region r.
func (s *EbitenSurface) Clear(r Rect) {
	if s.img == nil || r.Empty() {
		return
	}
	b := s.img.Bounds()
	area := image.Rect(
		int(r.X*s.scale), int(r.Y*s.scale),
		int((r.X+r.Width)*s.scale+0.5), int((r.Y+r.Height)*s.scale+0.5),
	).Add(b.Min).Intersect(b)
	if area.Empty() {
		return
	}
	if area == b {
		s.img.Clear()
		return
	}
	s.img.SubImage(area).(*ebiten.Image).Clear()
}

// FillCircle draws an anti-aliased filled circle.
func (s *EbitenSurface) FillCircle(x, y, radius float64, c Color) {
	if s.img == nil || radius <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img,
		float32(x*s.scale), float32(y*s.scale), float32(radius*s.scale),
		c.toNRGBA(), true)
}
