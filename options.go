package vib3

import (
	"log/slog"

	"github.com/gogpu/vib3/camera"
)

// Option configures a Vib3 during creation.
//
// Example:
//
//	v := vib3.Init(renderer, host,
//	    vib3.WithSplitBackground(0x101010),
//	    vib3.WithoutRendererResize())
type Option func(*options)

type options struct {
	splitCamera     *camera.Perspective
	splitBackground Color
	resize          bool
	logger          *slog.Logger
}

func defaultOptions() options {
	return options{
		splitBackground: SplitViewBackground,
		resize:          true,
	}
}

// WithSplitCamera replaces the secondary camera created by EnableSplitView.
func WithSplitCamera(cam *camera.Perspective) Option {
	return func(o *options) {
		o.splitCamera = cam
	}
}

// WithSplitBackground sets the background drawn behind the secondary view.
func WithSplitBackground(c Color) Option {
	return func(o *options) {
		o.splitBackground = c
	}
}

// WithoutRendererResize starts with resize detection disabled; see
// DisableRendererResize.
func WithoutRendererResize() Option {
	return func(o *options) {
		o.resize = false
	}
}

// WithLogger sets the logger for this instance. Without it the package
// logger from Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
