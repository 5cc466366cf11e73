package vib3

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/gogpu/gputypes"
)

// Element is anything with a layout box: the drawing surface itself or a
// region laid out over it.
type Element interface {
	// BoundingRect returns the element bounds in logical pixels.
	BoundingRect() Rect
}

// Surface is the presented drawing surface of a Renderer.
//
// ClientSize is the size the surface is presented at, in logical pixels.
// BackingSize is the size of the drawing buffer, in device pixels. The two
// drift apart when the window is resized or moved to a display with a
// different pixel ratio; the frame driver reconciles them.
type Surface interface {
	Element
	ClientSize() (width, height float64)
	BackingSize() (width, height int)
}

// Capabilities describes what a Renderer can do.
type Capabilities struct {
	// Backend names the rasterization path, e.g. "software" or "gpu".
	Backend string

	// Format is the pixel format of the drawing buffer.
	Format gputypes.TextureFormat

	// MaxSize is the largest supported backing dimension in pixels.
	MaxSize int

	// ScissorTest reports whether scissor rectangles are honoured.
	ScissorTest bool

	// ShaderCompilation reports whether the shader toolchain is usable.
	ShaderCompilation bool
}

// Renderer draws a Scene through a Camera onto a Surface.
//
// Scissor and viewport rectangles use a bottom-left origin in device
// pixels. SetSize sets the backing size, scaled by the renderer's own pixel
// ratio, and resets the viewport to the full surface. With updateStyle the
// presented size follows.
type Renderer interface {
	Surface() Surface
	SetSize(width, height int, updateStyle bool)
	SetScissorTest(enabled bool)
	SetScissor(v Viewport)
	SetViewport(v Viewport)
	Render(scene *Scene, cam Camera) error
	Capabilities() Capabilities
	SetShadowMap(enabled bool)
	SetPhysicallyCorrectLights(enabled bool)
}

// Camera is the projection capability every camera kind shares.
//
// ToView maps a world-space point into camera space: X to the right, Y up,
// Z the distance in front of the camera. ProjectView maps a camera-space
// point with Z inside ClipRange onto normalized device coordinates in
// [-1, 1].
type Camera interface {
	UpdateProjectionMatrix()
	ToView(p math32.Vector3) math32.Vector3
	ProjectView(v math32.Vector3) math32.Vector2
	ClipRange() (near, far float32)
}

// PerspectiveCamera is a camera whose shape is set by an aspect ratio.
type PerspectiveCamera interface {
	Camera
	SetAspect(aspect float32)
}

// OrthographicCamera is a camera whose shape is set by its horizontal extent.
type OrthographicCamera interface {
	Camera
	SetHorizontalExtent(left, right float32)
}

// Drawable is a line-set the renderer can draw.
type Drawable interface {
	Visible() bool
	Segments() [][2]math32.Vector3
	LineColor() color.Color
}

// CameraHelper is a debug visualizer for a camera.
type CameraHelper interface {
	Drawable
	Update()
	SetVisible(visible bool)
}

// Window reports the presented geometry of the host window.
type Window interface {
	// ClientRect returns the surface bounds in logical pixels.
	ClientRect() Rect

	// PixelRatio returns device pixels per logical pixel.
	PixelRatio() float64
}

// WindowResizer is implemented by windows whose presented size can be set.
type WindowResizer interface {
	SetClientSize(width, height float64)
}

// Scheduler delivers the host's per-frame refresh signal.
//
// RequestFrame arranges for fn to run once, on the next refresh, with the
// number of milliseconds since the host started. Callbacks are one-shot:
// a loop that wants to keep running must request again.
type Scheduler interface {
	RequestFrame(fn func(timeMs float64))
}

// Host bundles the window and scheduler a Vib3 runs against.
type Host interface {
	Window
	Scheduler
}

// CameraSupplier picks the index of the camera to render with.
type CameraSupplier func(timeS, timeMs float64) int

// Animation is called once per frame before rendering.
type Animation func(timeS, timeMs float64)
