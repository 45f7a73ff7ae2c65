package convert

import (
	"math"
	"testing"
)

func testRatios() Ratios {
	return Ratios{BaseRem: 16, BaseEm: 16, ContainerWidth: 1024, BaseUnit: 8}
}

func TestDirect_KnownValues(t *testing.T) {
	r := testRatios()

	tests := []struct {
		name  string
		mode  Mode
		value float64
		want  float64
	}{
		{"32px is 2rem", ModePxRem, 32, 2},
		{"2rem is 32px", ModeRemPx, 2, 32},
		{"24px is 1.5em", ModePxEm, 24, 1.5},
		{"1.5em is 24px", ModeEmPx, 1.5, 24},
		{"256px is 25% of 1024", ModePxPct, 256, 25},
		{"25% of 1024 is 256px", ModePctPx, 25, 256},
		{"3 base units are 24px", ModeBasePx, 3, 24},
		{"24px is 3 base units", ModePxBase, 24, 3},
		{"zero stays zero", ModePxPct, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direct(tt.mode, tt.value, r)
			if got != tt.want {
				t.Errorf("Direct(%s, %v) = %v, want %v", tt.mode, tt.value, got, tt.want)
			}
		})
	}
}

func TestReverse_IsOppositeDirection(t *testing.T) {
	r := testRatios()

	// Reverse of px-base converts base units to px, same as the direct
	// base-px transform.
	if got := Reverse(ModePxBase, 3, r); got != 24 {
		t.Errorf("Reverse(px-base, 3) = %v, want 24", got)
	}
	if got := Reverse(ModePxRem, 2, r); got != 32 {
		t.Errorf("Reverse(px-rem, 2) = %v, want 32", got)
	}
	if got := Reverse(ModePctPx, 256, r); got != 25 {
		t.Errorf("Reverse(pct-px, 256) = %v, want 25", got)
	}
}

func TestDirectReverse_RoundTrip(t *testing.T) {
	ratioSets := []Ratios{
		testRatios(),
		{BaseRem: 10, BaseEm: 18, ContainerWidth: 375, BaseUnit: 4},
		{BaseRem: 0.5, BaseEm: 3.7, ContainerWidth: 1920.5, BaseUnit: 13},
	}
	values := []float64{0, 0.001, 1, 16, 32, 99.75, 1024, -48, 1e9}

	for _, r := range ratioSets {
		for _, m := range AllModes {
			for _, v := range values {
				back := Reverse(m, Direct(m, v, r), r)
				if diff := math.Abs(back - v); diff > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("round trip %s: in=%g back=%g diff=%g (ratios %+v)", m, v, back, diff, r)
				}
				// And the other way around.
				fwd := Direct(m, Reverse(m, v, r), r)
				if diff := math.Abs(fwd - v); diff > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("reverse round trip %s: in=%g back=%g diff=%g", m, v, fwd, diff)
				}
			}
		}
	}
}

func TestDirect_UnknownMode(t *testing.T) {
	if got := Direct(Mode("furlong-px"), 42, testRatios()); got != 0 {
		t.Errorf("Direct(unknown) = %v, want 0", got)
	}
	if got := Reverse(Mode("furlong-px"), 42, testRatios()); got != 0 {
		t.Errorf("Reverse(unknown) = %v, want 0", got)
	}
}

func TestDirect_DegenerateRatiosPropagate(t *testing.T) {
	r := testRatios()
	r.ContainerWidth = 0

	got := Direct(ModePxPct, 100, r)
	if !math.IsInf(got, 1) {
		t.Errorf("Direct(px-pct, 100) with zero container = %v, want +Inf", got)
	}

	// 0/0 is the NaN corner.
	if got := Direct(ModePxPct, 0, r); !math.IsNaN(got) {
		t.Errorf("Direct(px-pct, 0) with zero container = %v, want NaN", got)
	}

	r.BaseRem = -16
	if got := Direct(ModePxRem, 32, r); got != -2 {
		t.Errorf("negative ratio should flow through, got %v", got)
	}
}

func TestDefaultRatios(t *testing.T) {
	r := DefaultRatios()
	if r.BaseRem != 16 || r.BaseEm != 16 || r.ContainerWidth != 1024 || r.BaseUnit != 8 {
		t.Errorf("unexpected defaults: %+v", r)
	}
}
