package marquee

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette maps the four cell states to colors.
type Palette struct {
	Background Color // CellEmpty and any invalid cell
	Dim        Color // CellDim
	Accent     Color // CellAccent
	Bright     Color // CellBright
}

// DefaultPalette is translucent white at four intensities.
var DefaultPalette = Palette{
	Background: Color{1, 1, 1, 0.05},
	Dim:        Color{1, 1, 1, 0.15},
	Accent:     Color{1, 1, 1, 0.7},
	Bright:     Color{1, 1, 1, 0.6},
}

// Merge returns p with every zero-valued entry replaced by the entry from
// base.
func (p Palette) Merge(base Palette) Palette {
	if p.Background == (Color{}) {
		p.Background = base.Background
	}
	if p.Dim == (Color{}) {
		p.Dim = base.Dim
	}
	if p.Accent == (Color{}) {
		p.Accent = base.Accent
	}
	if p.Bright == (Color{}) {
		p.Bright = base.Bright
	}
	return p
}

// For returns the color for c. Unknown states use Background.
func (p Palette) For(c Cell) Color {
	switch c {
	case CellDim:
		return p.Dim
	case CellAccent:
		return p.Accent
	case CellBright:
		return p.Bright
	default:
		return p.Background
	}
}

// ErrUnknownColor is returned by ParseColor for unrecognized color strings.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor parses a color string. Accepted forms are "#rgb", "#rrggbb",
// "#rrggbbaa", and SVG/CSS color names such as "white". Any form may carry
// an "@alpha" suffix with alpha in [0, 1], e.g. "white@0.15".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	name, alphaStr, hasAlpha := strings.Cut(s, "@")
	name = strings.ToLower(strings.TrimSpace(name))

	var c Color
	switch {
	case strings.HasPrefix(name, "#") && len(name) == 9:
		hc, err := colorful.Hex(name[:7])
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(name[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		c = Color{hc.R, hc.G, hc.B, float64(a) / 255}
	case strings.HasPrefix(name, "#"):
		hc, err := colorful.Hex(name)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		c = Color{hc.R, hc.G, hc.B, 1}
	default:
		named, ok := colornames.Map[name]
		if !ok {
			return Color{}, fmt.Errorf("parse color %q: %w", s, ErrUnknownColor)
		}
		c = Color{
			R: float64(named.R) / 255,
			G: float64(named.G) / 255,
			B: float64(named.B) / 255,
			A: float64(named.A) / 255,
		}
	}

	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(alphaStr), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("parse color %q: alpha must be in [0, 1]", s)
		}
		c.A = a
	}
	return c, nil
}
