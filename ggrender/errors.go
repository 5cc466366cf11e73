// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import "errors"

// Common errors returned by Renderer operations.
var (
	// ErrNilWindow is returned when New receives a nil window.
	ErrNilWindow = errors.New("ggrender: nil window")

	// ErrNilScene is returned when Render receives a nil scene.
	ErrNilScene = errors.New("ggrender: nil scene")

	// ErrNilCamera is returned when Render receives a nil camera.
	ErrNilCamera = errors.New("ggrender: nil camera")

	// ErrClosed is returned when a closed renderer is used.
	ErrClosed = errors.New("ggrender: renderer is closed")
)
