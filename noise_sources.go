package marquee

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// SimplexSampler is a seeded OpenSimplex field. Unlike NoiseField it is
// reproducible across runs for a given seed.
type SimplexSampler struct {
	noise opensimplex.Noise
}

// NewSimplexSampler creates an OpenSimplex field for seed.
func NewSimplexSampler(seed int64) *SimplexSampler {
	return &SimplexSampler{noise: opensimplex.New(seed)}
}

// Sample returns the OpenSimplex value at (x, y), in [-1, 1].
func (s *SimplexSampler) Sample(x, y float64) float64 {
	return clampUnit(s.noise.Eval2(x, y))
}

// FractalSampler sums several octaves of Perlin noise.
type FractalSampler struct {
	p *perlin.Perlin
}

// NewFractalSampler creates a fractal field. alpha is the per-octave
// amplitude divisor, beta the frequency multiplier, and octaves the number
// of layers (values below 1 are raised to 1).
func NewFractalSampler(alpha, beta float64, octaves int32, seed int64) *FractalSampler {
	if octaves < 1 {
		octaves = 1
	}
	return &FractalSampler{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Sample returns the fractal value at (x, y), clamped to [-1, 1].
func (f *FractalSampler) Sample(x, y float64) float64 {
	return clampUnit(f.p.Noise2D(x, y))
}

func clampUnit(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
