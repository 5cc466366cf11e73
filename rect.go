package vib3

// Rect is an axis-aligned rectangle in logical pixels with the origin at
// the top-left corner, Y growing downward. It mirrors what a layout engine
// reports as an element's bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Viewport is a rectangle in device pixels with the origin at the
// bottom-left corner of the drawing surface, Y growing upward. Scissor and
// viewport state on a Renderer use this convention.
type Viewport struct {
	X, Y, Width, Height float64
}

// Aspect returns Width/Height, or 0 for an empty viewport.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 0
	}
	return v.Width / v.Height
}

// Empty reports whether the viewport covers no pixels.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// FullViewport returns the viewport covering a surface of the given backing size.
func FullViewport(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}
