package vib3

import (
	"math"
	"testing"
)

func TestLinearFogFactor(t *testing.T) {
	f := LinearFog{Color: 0xffffff, Near: 10, Far: 110}
	tests := []struct {
		depth float32
		want  float32
	}{
		{0, 0},
		{10, 0},
		{60, 0.5},
		{110, 1},
		{500, 1},
	}
	for _, tt := range tests {
		if got := f.Factor(tt.depth); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Factor(%v) = %v, want %v", tt.depth, got, tt.want)
		}
	}
	if got := (LinearFog{Near: 5, Far: 5}).Factor(6); got != 1 {
		t.Errorf("degenerate range Factor() = %v, want 1", got)
	}
}

func TestExpFogFactor(t *testing.T) {
	f := ExpFog{Density: 0.1}
	if got := f.Factor(0); got != 0 {
		t.Errorf("Factor(0) = %v, want 0", got)
	}
	want := 1 - math.Exp(-1)
	if got := f.Factor(10); math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("Factor(10) = %v, want %v", got, want)
	}
	prev := float32(0)
	for d := float32(1); d < 100; d *= 2 {
		got := f.Factor(d)
		if got < prev || got > 1 {
			t.Errorf("Factor(%v) = %v, not monotonic in [0, 1]", d, got)
		}
		prev = got
	}
}

func TestFogColor(t *testing.T) {
	fogs := []Fog{
		LinearFog{Color: 0x123456},
		ExpFog{Color: 0x123456},
	}
	for _, f := range fogs {
		if f.FogColor() != 0x123456 {
			t.Errorf("%T.FogColor() = %v", f, f.FogColor())
		}
	}
}
