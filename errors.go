package vib3

import "errors"

// Common errors returned by Vib3 operations.
var (
	// ErrNoCamera is returned when a frame is requested before any camera was added.
	ErrNoCamera = errors.New("vib3: no camera configured")

	// ErrCameraIndex is returned when the camera supplier yields an index
	// outside the camera list.
	ErrCameraIndex = errors.New("vib3: camera index out of range")

	// ErrHelperMismatch is returned by Validate when camera helpers are
	// configured but do not line up one-to-one with cameras.
	ErrHelperMismatch = errors.New("vib3: camera helpers do not match cameras")

	// ErrRunning is returned when Start is called on a running loop.
	ErrRunning = errors.New("vib3: animation loop already running")

	// ErrNilRenderer is returned when Init receives a nil renderer.
	ErrNilRenderer = errors.New("vib3: nil renderer")

	// ErrNilHost is returned when Init receives a nil host.
	ErrNilHost = errors.New("vib3: nil host")

	// ErrInvalidColor is returned by ParseColor for malformed input.
	ErrInvalidColor = errors.New("vib3: invalid color")
)
