package marquee

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// ImageSurface is a headless Surface backed by a CPU canvas. It is used for
// PNG snapshots and anywhere no window is available.
type ImageSurface struct {
	dc            *gg.Context
	width, height float64
	scale         float64
}

// NewImageSurface creates a canvas of width×height logical pixels. The
// backing image is scale times larger in each dimension; scale <= 0 means 1.
func NewImageSurface(width, height int, scale float64) *ImageSurface {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Ceil(float64(width)*scale)))
	h := max(1, int(math.Ceil(float64(height)*scale)))
	return &ImageSurface{
		dc:     gg.NewContext(w, h),
		width:  float64(width),
		height: float64(height),
		scale:  scale,
	}
}

// Size returns the logical canvas size.
func (s *ImageSurface) Size() (float64, float64) {
	return s.width, s.height
}

// Clear resets the region r to transparent.
func (s *ImageSurface) Clear(r Rect) {
	if r.Empty() {
		return
	}
	if r.X <= 0 && r.Y <= 0 && r.X+r.Width >= s.width && r.Y+r.Height >= s.height {
		s.dc.Clear()
		return
	}
	x0 := max(0, int(r.X*s.scale))
	y0 := max(0, int(r.Y*s.scale))
	x1 := min(s.dc.Width(), int(math.Ceil((r.X+r.Width)*s.scale)))
	y1 := min(s.dc.Height(), int(math.Ceil((r.Y+r.Height)*s.scale)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.dc.SetPixel(x, y, gg.Transparent)
		}
	}
}

// FillCircle draws a filled circle.
func (s *ImageSurface) FillCircle(x, y, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(x*s.scale, y*s.scale, radius*s.scale)
	if err := s.dc.Fill(); err != nil {
		Logger().Debug("image surface fill failed", "err", err)
	}
}

// Image returns the rendered canvas.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file at path.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the canvas.
func (s *ImageSurface) Close() error {
	return s.dc.Close()
}
