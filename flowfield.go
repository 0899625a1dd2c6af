package marquee

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// gridPoint holds per-dot simulation state. Unexported; managed by FlowField.
type gridPoint struct {
	originX, originY float64
	x, y             float64 // rendered position
	targetX, targetY float64
	opacity          float64
	targetOpacity    float64
	phaseX, phaseY   float64 // noise-space offsets decorrelating neighbours
}

// FlowConfig controls the dot grid and its motion. Zero fields take the
// defaults noted on each field.
type FlowConfig struct {
	// Spacing is the grid pitch in pixels. Default 14.
	Spacing float64
	// TimeStep is added to the noise time axis every frame. Default 0.003.
	TimeStep float64
	// FlowStrength scales the noise displacement in pixels. Default 6.
	FlowStrength float64
	// BaseOpacity is the resting dot opacity. Default 0.06.
	BaseOpacity float64
	// OpacityRange is the largest noise-driven bonus on top of BaseOpacity. Default 0.08.
	OpacityRange float64
	// Smoothing is the per-frame exponential smoothing factor in (0, 1]. Default 0.06.
	Smoothing float64
	// DotRadius is the circle radius in pixels. Default 1.
	DotRadius float64
	// Color is the dot color; its alpha is ignored. Default white.
	Color Color
	// Noise is the displacement field. Default: a new NoiseField.
	Noise Sampler
	// FadeIn ramps the whole field from invisible to full opacity. Zero disables it.
	FadeIn time.Duration
	// FadeEase is the easing curve for FadeIn. Default ease.OutQuad.
	FadeEase ease.TweenFunc
}

// withDefaults returns a copy of cfg with zero fields replaced.
func (cfg FlowConfig) withDefaults() FlowConfig {
	if cfg.Spacing <= 0 {
		cfg.Spacing = 14
	}
	if cfg.TimeStep == 0 {
		cfg.TimeStep = 0.003
	}
	if cfg.FlowStrength == 0 {
		cfg.FlowStrength = 6
	}
	if cfg.BaseOpacity == 0 {
		cfg.BaseOpacity = 0.06
	}
	if cfg.OpacityRange == 0 {
		cfg.OpacityRange = 0.08
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		cfg.Smoothing = 0.06
	}
	if cfg.DotRadius <= 0 {
		cfg.DotRadius = 1
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	if cfg.FadeEase == nil {
		cfg.FadeEase = ease.OutQuad
	}
	return cfg
}

// FlowField is a grid of dots drifting and fading under a noise field.
// Call Resize whenever the surface size changes, then Update and Draw once
// per frame.
type FlowField struct {
	config        FlowConfig
	noise         Sampler
	points        []gridPoint
	time          float64
	width, height float64
	fade          *Fade
}

// NewFlowField creates an empty field. The grid is built by the first Resize.
func NewFlowField(cfg FlowConfig) *FlowField {
	cfg = cfg.withDefaults()
	noise := cfg.Noise
	if noise == nil {
		noise = NewNoiseField()
	}
	return &FlowField{
		config: cfg,
		noise:  noise,
		fade:   NewFade(0, 1, cfg.FadeIn, cfg.FadeEase),
	}
}

// Config returns the effective configuration.
func (f *FlowField) Config() FlowConfig {
	return f.config
}

// Resize rebuilds the grid to cover width×height. The pitch is fixed, so
// the point count scales with area. A non-positive size empties the grid.
func (f *FlowField) Resize(width, height float64) {
	f.width, f.height = width, height
	f.points = f.points[:0]
	if width <= 0 || height <= 0 {
		return
	}

	sp := f.config.Spacing
	cols := int(math.Ceil(width/sp)) + 1
	rows := int(math.Ceil(height/sp)) + 1
	if cap(f.points) < cols*rows {
		f.points = make([]gridPoint, 0, cols*rows)
	}
	base := f.config.BaseOpacity
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := float64(i) * sp
			y := float64(j) * sp
			f.points = append(f.points, gridPoint{
				originX: x, originY: y,
				x: x, y: y,
				targetX: x, targetY: y,
				opacity:       base,
				targetOpacity: base,
				phaseX:        float64(i) * 0.1,
				phaseY:        float64(j) * 0.1,
			})
		}
	}
}

// Update advances one frame at the current ticks-per-second rate.
func (f *FlowField) Update() {
	f.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances one frame. dt only drives the fade-in; motion
// advances by TimeStep per call regardless of dt.
func (f *FlowField) UpdateDelta(dt float64) {
	f.fade.Update(float32(dt))

	f.time += f.config.TimeStep
	t := f.time
	strength := f.config.FlowStrength
	base := f.config.BaseOpacity
	span := f.config.OpacityRange
	k := f.config.Smoothing

	for i := range f.points {
		p := &f.points[i]

		nx := f.noise.Sample(p.phaseX+t, p.phaseY)
		ny := f.noise.Sample(p.phaseX, p.phaseY+t)
		no := f.noise.Sample(p.phaseX+t*0.5, p.phaseY+t*0.5)

		p.targetX = p.originX + nx*strength
		p.targetY = p.originY + ny*strength
		p.targetOpacity = base + (no+1)*0.5*span

		p.x += (p.targetX - p.x) * k
		p.y += (p.targetY - p.y) * k
		p.opacity += (p.targetOpacity - p.opacity) * k
	}
}

// Draw clears the surface and paints every dot. A nil surface is a no-op.
func (f *FlowField) Draw(s Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.Clear(Rect{Width: w, Height: h})

	level := f.fade.Value()
	if level <= 0 {
		return
	}
	c := f.config.Color
	r := f.config.DotRadius
	for i := range f.points {
		p := &f.points[i]
		s.FillCircle(p.x, p.y, r, c.WithAlpha(p.opacity*level))
	}
}

// PointCount returns the number of dots in the grid.
func (f *FlowField) PointCount() int {
	return len(f.points)
}

// Point returns the rendered position and opacity of dot i.
func (f *FlowField) Point(i int) (x, y, opacity float64) {
	p := &f.points[i]
	return p.x, p.y, p.opacity
}

// Time returns the accumulated noise time.
func (f *FlowField) Time() float64 {
	return f.time
}

// FadeLevel returns the current fade-in multiplier in [0, 1].
func (f *FlowField) FadeLevel() float64 {
	return f.fade.Value()
}
