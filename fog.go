package vib3

import "cogentcore.org/core/math32"

// Fog fades geometry toward a colour with distance from the camera.
type Fog interface {
	// FogColor returns the colour geometry fades into.
	FogColor() Color

	// Factor returns how strongly a point at the given view depth is
	// fogged: 0 is untouched, 1 is fully the fog colour.
	Factor(depth float32) float32
}

// LinearFog grows linearly from Near to Far.
type LinearFog struct {
	Color     Color
	Near, Far float32
}

// FogColor implements Fog.
func (f LinearFog) FogColor() Color { return f.Color }

// Factor implements Fog.
func (f LinearFog) Factor(depth float32) float32 {
	if depth <= f.Near {
		return 0
	}
	if depth >= f.Far || f.Far <= f.Near {
		return 1
	}
	return (depth - f.Near) / (f.Far - f.Near)
}

// ExpFog grows exponentially with the square of distance.
type ExpFog struct {
	Color   Color
	Density float32
}

// FogColor implements Fog.
func (f ExpFog) FogColor() Color { return f.Color }

// Factor implements Fog.
func (f ExpFog) Factor(depth float32) float32 {
	d := f.Density * depth
	return 1 - math32.Exp(-d*d)
}

// Fog defaults.
const (
	DefaultFogNear    float32 = 1
	DefaultFogFar     float32 = 1000
	DefaultFogDensity float32 = 0.1
)

// FogOption configures EnableFog and EnableFogExp2.
type FogOption func(*fogOptions)

type fogOptions struct {
	color   *Color
	near    float32
	far     float32
	density float32
}

func defaultFogOptions() fogOptions {
	return fogOptions{
		near:    DefaultFogNear,
		far:     DefaultFogFar,
		density: DefaultFogDensity,
	}
}

// WithFogColor sets the fog colour.
func WithFogColor(c Color) FogOption {
	return func(o *fogOptions) {
		o.color = &c
	}
}

// WithFogRange sets the near and far distances of linear fog.
func WithFogRange(near, far float32) FogOption {
	return func(o *fogOptions) {
		o.near = near
		o.far = far
	}
}

// WithFogDensity sets the density of exponential fog.
func WithFogDensity(density float32) FogOption {
	return func(o *fogOptions) {
		o.density = density
	}
}
