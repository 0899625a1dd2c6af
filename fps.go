package marquee

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay is a small FPS/TPS readout refreshed about every half second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	primed  bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.primed && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.primed = true

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) dispose() {
	o.img.Deallocate()
}

// drawFPS draws the readout in the top-left corner of screen.
func (s *Stage) drawFPS(screen *ebiten.Image) {
	if s.fps == nil {
		s.fps = newFPSOverlay()
	}
	s.fps.update(1.0 / float64(ebiten.TPS()))
	screen.DrawImage(s.fps.img, nil)
}
