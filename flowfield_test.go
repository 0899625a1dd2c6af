package marquee

import (
	"math"
	"testing"
	"time"
)

// constSampler returns the same value everywhere.
type constSampler float64

func (c constSampler) Sample(x, y float64) float64 { return float64(c) }

// recordSampler records every sample position.
type recordSampler struct {
	calls [][2]float64
}

func (r *recordSampler) Sample(x, y float64) float64 {
	r.calls = append(r.calls, [2]float64{x, y})
	return 0
}

func TestFlowConfigDefaults(t *testing.T) {
	cfg := FlowConfig{}.withDefaults()
	assertNear(t, "Spacing", cfg.Spacing, 14)
	assertNear(t, "TimeStep", cfg.TimeStep, 0.003)
	assertNear(t, "FlowStrength", cfg.FlowStrength, 6)
	assertNear(t, "BaseOpacity", cfg.BaseOpacity, 0.06)
	assertNear(t, "OpacityRange", cfg.OpacityRange, 0.08)
	assertNear(t, "Smoothing", cfg.Smoothing, 0.06)
	assertNear(t, "DotRadius", cfg.DotRadius, 1)
	if cfg.Color != ColorWhite {
		t.Errorf("Color = %v, want white", cfg.Color)
	}
	if cfg.FadeEase == nil {
		t.Error("FadeEase should default to a curve")
	}
}

func TestFlowFieldGridSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want int
	}{
		{140, 70, 11 * 6}, // ceil(140/14)+1 × ceil(70/14)+1
		{141, 70, 12 * 6}, // a partial cell adds a column
		{1, 1, 2 * 2},
		{0, 100, 0},
		{100, -5, 0},
	}
	for _, tt := range tests {
		f := NewFlowField(FlowConfig{Noise: constSampler(0)})
		f.Resize(tt.w, tt.h)
		if got := f.PointCount(); got != tt.want {
			t.Errorf("Resize(%v, %v): PointCount = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFlowFieldResizeRebuilds(t *testing.T) {
	f := NewFlowField(FlowConfig{Noise: constSampler(0)})
	f.Resize(280, 140)
	big := f.PointCount()
	f.Resize(140, 70)
	if f.PointCount() >= big {
		t.Errorf("PointCount after shrink = %d, want < %d", f.PointCount(), big)
	}
	x, y, op := f.Point(0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 0)
	assertNear(t, "opacity", op, 0.06)
}

func TestFlowFieldTimeAdvances(t *testing.T) {
	f := NewFlowField(FlowConfig{Noise: constSampler(0)})
	for i := 0; i < 10; i++ {
		f.UpdateDelta(1.0 / 60)
	}
	assertNear(t, "Time", f.Time(), 0.03)
}

func TestFlowFieldSmoothing(t *testing.T) {
	// Constant noise 1 puts every target at origin + strength with
	// opacity base + range.
	f := NewFlowField(FlowConfig{
		Noise:        constSampler(1),
		FlowStrength: 10,
		BaseOpacity:  0.1,
		OpacityRange: 0.2,
		Smoothing:    0.5,
	})
	f.Resize(1, 1)

	f.UpdateDelta(1.0 / 60)
	x, y, op := f.Point(0)
	assertNear(t, "x after 1 frame", x, 5)
	assertNear(t, "y after 1 frame", y, 5)
	assertNear(t, "opacity after 1 frame", op, 0.2)

	f.UpdateDelta(1.0 / 60)
	x, _, op = f.Point(0)
	assertNear(t, "x after 2 frames", x, 7.5)
	assertNear(t, "opacity after 2 frames", op, 0.25)

	for i := 0; i < 100; i++ {
		f.UpdateDelta(1.0 / 60)
	}
	x, y, op = f.Point(0)
	assertNear(t, "x converged", x, 10)
	assertNear(t, "y converged", y, 10)
	assertNear(t, "opacity converged", op, 0.3)
}

func TestFlowFieldSamplePositions(t *testing.T) {
	rec := &recordSampler{}
	f := NewFlowField(FlowConfig{Noise: rec, TimeStep: 1})
	f.Resize(14, 1) // 2 columns × 2 rows

	f.UpdateDelta(1.0 / 60)
	if len(rec.calls) != 3*f.PointCount() {
		t.Fatalf("samples = %d, want %d", len(rec.calls), 3*f.PointCount())
	}
	// Points are laid out column-major; point 2 is column 1, row 0 with
	// phases (0.1, 0).
	got := rec.calls[2*3 : 2*3+3]
	want := [][2]float64{{1.1, 0}, {0.1, 1}, {0.6, 0.5}}
	for i := range want {
		assertNear(t, "sample x", got[i][0], want[i][0])
		assertNear(t, "sample y", got[i][1], want[i][1])
	}
}

func TestFlowFieldDraw(t *testing.T) {
	f := NewFlowField(FlowConfig{Noise: constSampler(0)})
	f.Resize(28, 14)
	s := newRecordSurface(28, 14)
	f.Draw(s)

	if len(s.clears) != 1 || s.clears[0] != (Rect{Width: 28, Height: 14}) {
		t.Errorf("clears = %v, want one full clear", s.clears)
	}
	if len(s.fills) != f.PointCount() {
		t.Fatalf("fills = %d, want %d", len(s.fills), f.PointCount())
	}
	for _, fc := range s.fills {
		assertNear(t, "radius", fc.r, 1)
		assertNear(t, "alpha", fc.c.A, 0.06)
	}
}

func TestFlowFieldDrawNilSurface(t *testing.T) {
	f := NewFlowField(FlowConfig{})
	f.Resize(100, 100)
	f.Draw(nil) // must not panic
}

func TestFlowFieldDrawEmptySurface(t *testing.T) {
	f := NewFlowField(FlowConfig{})
	f.Resize(100, 100)
	s := newRecordSurface(0, 0)
	f.Draw(s)
	if len(s.clears) != 0 || len(s.fills) != 0 {
		t.Errorf("zero-size surface should be skipped, got %d clears %d fills", len(s.clears), len(s.fills))
	}
}

func TestFlowFieldFadeIn(t *testing.T) {
	f := NewFlowField(FlowConfig{Noise: constSampler(0), FadeIn: time.Second})
	f.Resize(1, 1)
	if f.FadeLevel() != 0 {
		t.Fatalf("FadeLevel before update = %v, want 0", f.FadeLevel())
	}

	s := newRecordSurface(1, 1)
	f.Draw(s)
	if len(s.fills) != 0 {
		t.Errorf("fully faded field drew %d dots, want 0", len(s.fills))
	}

	for i := 0; i < 30; i++ {
		f.UpdateDelta(1.0 / 60)
	}
	mid := f.FadeLevel()
	if mid <= 0 || mid >= 1 {
		t.Errorf("FadeLevel halfway = %v, want in (0, 1)", mid)
	}

	for i := 0; i < 60; i++ {
		f.UpdateDelta(1.0 / 60)
	}
	assertNear(t, "FadeLevel done", f.FadeLevel(), 1)

	s.reset()
	f.Draw(s)
	if len(s.fills) != f.PointCount() {
		t.Errorf("fills = %d, want %d", len(s.fills), f.PointCount())
	}
	_, _, op := f.Point(0)
	assertNear(t, "alpha at full fade", s.fills[0].c.A, op)
	if math.Abs(op-0.1) > 1e-3 {
		t.Errorf("opacity = %v, want about 0.1", op)
	}
}

func TestFlowFieldNoFadeByDefault(t *testing.T) {
	f := NewFlowField(FlowConfig{})
	assertNear(t, "FadeLevel", f.FadeLevel(), 1)
}
