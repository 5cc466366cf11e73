// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/vib3"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := ggrender.New(win,
//	    ggrender.WithLineWidth(1.5),
//	    ggrender.WithStatsOverlay(true))
type Option func(*options)

type options struct {
	target      Target
	pixelRatio  float64
	clearColor  vib3.Color
	lineWidth   float64
	overlay     bool
	rasterizer  gg.RasterizerMode
	overlaySize float64
}

func defaultOptions() options {
	return options{
		pixelRatio:  1,
		clearColor:  0x000000,
		lineWidth:   1,
		rasterizer:  gg.RasterizerAuto,
		overlaySize: 12,
	}
}

// WithTarget draws into t instead of a private gg.Context. A
// ggcanvas.Canvas is a Target.
func WithTarget(t Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithPixelRatio sets the renderer's own pixel ratio. SetSize multiplies
// sizes by it. The default of 1 suits callers that pass device pixels.
func WithPixelRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.pixelRatio = ratio
		}
	}
}

// WithClearColor sets the colour used when the scene has no background.
func WithClearColor(c vib3.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithLineWidth sets the stroke width in device pixels.
func WithLineWidth(width float64) Option {
	return func(o *options) {
		if width > 0 {
			o.lineWidth = width
		}
	}
}

// WithStatsOverlay draws per-frame counters in the top-left corner on EndFrame.
func WithStatsOverlay(enabled bool) Option {
	return func(o *options) {
		o.overlay = enabled
	}
}

// WithRasterizerMode forces a gg rasterization algorithm.
func WithRasterizerMode(mode gg.RasterizerMode) Option {
	return func(o *options) {
		o.rasterizer = mode
	}
}
