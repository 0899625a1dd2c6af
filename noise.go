package marquee

import (
	"math"
	"math/rand/v2"
)

// Sampler is a continuous 2D scalar field returning values in [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// PermutationTable is a shuffled 0..255 sequence stored twice so lattice
// lookups of index+1 never need a bounds check.
type PermutationTable [512]uint8

// NewPermutationTable shuffles 0..255 with Fisher–Yates and duplicates it.
// A nil rng uses the global source; there is no persisted seed.
func NewPermutationTable(rng *rand.Rand) *PermutationTable {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		p[i], p[j] = p[j], p[i]
	}
	t := new(PermutationTable)
	for i := range t {
		t[i] = p[i&255]
	}
	return t
}

// NoiseField is 2D gradient noise over a permutation table. It is C¹
// continuous and periodic with period 256 on both axes.
type NoiseField struct {
	perm *PermutationTable
}

// NewNoiseField creates a field over a freshly randomized table.
func NewNoiseField() *NoiseField {
	return &NoiseField{perm: NewPermutationTable(nil)}
}

// NewNoiseFieldFrom creates a field over an existing table.
func NewNoiseFieldFrom(t *PermutationTable) *NoiseField {
	return &NoiseField{perm: t}
}

// Table returns the field's permutation table.
func (n *NoiseField) Table() *PermutationTable {
	return n.perm
}

// Sample returns the noise value at (x, y), in [-1, 1].
func (n *NoiseField) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	x -= fx
	y -= fy
	u := fade(x)
	v := fade(y)

	p := n.perm
	a := int(p[xi]) + yi
	b := int(p[xi+1]) + yi

	return lerp(
		lerp(grad(p[a], x, y), grad(p[b], x-1, y), u),
		lerp(grad(p[a+1], x, y-1), grad(p[b+1], x-1, y-1), u),
		v,
	)
}

// fade is the quintic 6t⁵ − 15t⁴ + 10t³ easing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// grad picks one of four diagonal gradients from the low bits of hash and
// returns its dot product with (x, y).
func grad(hash uint8, x, y float64) float64 {
	h := hash & 3
	u, v := x, y
	if h >= 2 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
