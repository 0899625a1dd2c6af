package marquee

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single opacity multiplier between two levels. Call Update
// each frame; once Done is set the value stays at the end level.
//
// There is no global animation manager; the owning component drives it.
type Fade struct {
	tween *gween.Tween
	value float64
	Done  bool
}

// NewFade creates a fade from one level to another over d using fn.
// A non-positive duration produces a fade that is already complete.
// A nil fn uses ease.OutQuad.
func NewFade(from, to float64, d time.Duration, fn ease.TweenFunc) *Fade {
	if d <= 0 {
		return &Fade{value: to, Done: true}
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	return &Fade{
		tween: gween.New(float32(from), float32(to), float32(d.Seconds()), fn),
		value: from,
	}
}

// Update advances the fade by dt seconds and returns the current level.
func (f *Fade) Update(dt float32) float64 {
	if f.Done {
		return f.value
	}
	val, finished := f.tween.Update(dt)
	f.value = float64(val)
	f.Done = finished
	return f.value
}

// Value returns the current level.
func (f *Fade) Value() float64 {
	return f.value
}
