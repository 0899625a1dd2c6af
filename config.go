package marquee

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is the JSON document hosts load to build a field and a board:
//
//	{
//	  "field": {"spacing": 14, "noise": "simplex", "seed": 7, "fadeInMs": 800},
//	  "board": {
//	    "text": "hello world", "rows": 10, "lightSize": 4, "gap": 1,
//	    "updateInterval": "frame", "font": "default",
//	    "colors": {"accent": "#ff8800", "dim": "white@0.15"},
//	    "paint": "accent", "disableDrawing": false
//	  }
//	}
//
// Every option is optional; missing values take the defaults of
// DefaultBoardConfig and FlowConfig.
type Config struct {
	Field *FieldOptions `json:"field,omitempty"`
	Board BoardOptions  `json:"board"`
}

// FieldOptions is the JSON form of FlowConfig. Zero values mean default.
type FieldOptions struct {
	Spacing      float64 `json:"spacing,omitempty"`
	TimeStep     float64 `json:"timeStep,omitempty"`
	FlowStrength float64 `json:"flowStrength,omitempty"`
	BaseOpacity  float64 `json:"baseOpacity,omitempty"`
	OpacityRange float64 `json:"opacityRange,omitempty"`
	Smoothing    float64 `json:"smoothing,omitempty"`
	DotRadius    float64 `json:"dotRadius,omitempty"`
	Color        string  `json:"color,omitempty"`
	// Noise is "perlin" (default), "simplex" or "fractal".
	Noise    string `json:"noise,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
	FadeInMS int    `json:"fadeInMs,omitempty"`
}

// BoardOptions is the JSON form of BoardConfig.
type BoardOptions struct {
	Text              string         `json:"text"`
	Rows              int            `json:"rows,omitempty"`
	LightSize         *float64       `json:"lightSize,omitempty"`
	Gap               *float64       `json:"gap,omitempty"`
	UpdateInterval    UpdateInterval `json:"updateInterval"`
	Font              string         `json:"font,omitempty"`
	Colors            ColorOptions   `json:"colors"`
	Paint             string         `json:"paint,omitempty"`
	DisableDrawing    bool           `json:"disableDrawing,omitempty"`
	DisableHoverPause bool           `json:"disableHoverPause,omitempty"`
}

// ColorOptions holds ParseColor strings for each palette entry. Empty
// entries keep the default color.
type ColorOptions struct {
	Background string `json:"background,omitempty"`
	Dim        string `json:"dim,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Bright     string `json:"bright,omitempty"`
}

// UpdateInterval is a scroll interval that decodes from either a number of
// milliseconds or the string "frame".
type UpdateInterval struct {
	Duration time.Duration
	Set      bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UpdateInterval) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = UpdateInterval{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !strings.EqualFold(s, "frame") {
			return fmt.Errorf("updateInterval: want milliseconds or \"frame\", got %q", s)
		}
		*u = UpdateInterval{Duration: FrameSynced, Set: true}
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("updateInterval: %w", err)
	}
	if ms < 0 {
		return fmt.Errorf("updateInterval: negative value %v", ms)
	}
	*u = UpdateInterval{Duration: time.Duration(ms * float64(time.Millisecond)), Set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u UpdateInterval) MarshalJSON() ([]byte, error) {
	if u.Set && u.Duration == FrameSynced {
		return []byte(`"frame"`), nil
	}
	return json.Marshal(float64(u.Duration) / float64(time.Millisecond))
}

// LoadConfig parses and validates a JSON config document.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.BoardConfig(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.FlowConfig(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the config file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// BoardConfig converts the board options to a BoardConfig.
func (c Config) BoardConfig() (BoardConfig, error) {
	o := c.Board
	bc := DefaultBoardConfig()
	bc.Text = o.Text
	bc.DisableDrawing = o.DisableDrawing
	bc.DisableHoverPause = o.DisableHoverPause
	if o.Rows > 0 {
		bc.Rows = o.Rows
	}
	if o.LightSize != nil {
		if *o.LightSize <= 0 {
			return BoardConfig{}, fmt.Errorf("board: lightSize must be positive, got %v", *o.LightSize)
		}
		bc.LightSize = *o.LightSize
	}
	if o.Gap != nil {
		if *o.Gap < 0 {
			return BoardConfig{}, fmt.Errorf("board: gap must not be negative, got %v", *o.Gap)
		}
		bc.Gap = *o.Gap
	}
	if o.UpdateInterval.Set {
		bc.Interval = o.UpdateInterval.Duration
	}
	if o.Font != "" {
		f, ok := FontByName(o.Font)
		if !ok {
			Logger().Warn("unknown font; using default", "font", o.Font)
		}
		bc.Font = f
	}

	pal, err := o.Colors.palette()
	if err != nil {
		return BoardConfig{}, fmt.Errorf("board: %w", err)
	}
	bc.Palette = pal.Merge(DefaultPalette)

	if o.Paint != "" {
		cell, err := ParseCell(o.Paint)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("board: paint: %w", err)
		}
		bc.Paint.Value = cell
	}
	return bc, nil
}

// FlowConfig converts the field options to a FlowConfig. A config without
// a field section yields the zero FlowConfig, which means all defaults.
func (c Config) FlowConfig() (FlowConfig, error) {
	if c.Field == nil {
		return FlowConfig{}, nil
	}
	o := c.Field
	fc := FlowConfig{
		Spacing:      o.Spacing,
		TimeStep:     o.TimeStep,
		FlowStrength: o.FlowStrength,
		BaseOpacity:  o.BaseOpacity,
		OpacityRange: o.OpacityRange,
		Smoothing:    o.Smoothing,
		DotRadius:    o.DotRadius,
		FadeIn:       time.Duration(o.FadeInMS) * time.Millisecond,
	}
	if o.Color != "" {
		col, err := ParseColor(o.Color)
		if err != nil {
			return FlowConfig{}, fmt.Errorf("field: %w", err)
		}
		fc.Color = col
	}
	switch strings.ToLower(o.Noise) {
	case "", "perlin":
	case "simplex":
		fc.Noise = NewSimplexSampler(o.Seed)
	case "fractal":
		fc.Noise = NewFractalSampler(2, 2, 3, o.Seed)
	default:
		return FlowConfig{}, fmt.Errorf("field: unknown noise %q", o.Noise)
	}
	return fc, nil
}

func (o ColorOptions) palette() (Palette, error) {
	var p Palette
	entries := []struct {
		name string
		src  string
		dst  *Color
	}{
		{"background", o.Background, &p.Background},
		{"dim", o.Dim, &p.Dim},
		{"accent", o.Accent, &p.Accent},
		{"bright", o.Bright, &p.Bright},
	}
	for _, e := range entries {
		if e.src == "" {
			continue
		}
		c, err := ParseColor(e.src)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", e.name, err)
		}
		*e.dst = c
	}
	return p, nil
}

// ErrUnknownCell is returned by ParseCell for unrecognized names.
var ErrUnknownCell = errors.New("unknown cell state")

// ParseCell parses a cell state name as printed by Cell.String.
func ParseCell(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return CellEmpty, nil
	case "dim":
		return CellDim, nil
	case "accent":
		return CellAccent, nil
	case "bright":
		return CellBright, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %q", ErrUnknownCell, s)
	}
}
