package vib3

import "math"

// ScissorForElement computes the device-pixel scissor rectangle for an
// element drawn over a surface.
//
// Both rectangles are in logical pixels with a top-left origin and are
// scaled by ratio. The element is intersected with the surface first and
// only then clamped at zero, and the result is flipped to the renderer's
// bottom-left origin. Width and height never go negative: an element that
// lies entirely outside the surface yields an empty viewport.
//
// The returned aspect is width/height of the result, or 0 when empty.
func ScissorForElement(elem, surface Rect, ratio float64) (Viewport, float64) {
	elemRight := elem.Right * ratio
	elemLeft := elem.Left * ratio
	elemBottom := elem.Bottom * ratio
	elemTop := elem.Top * ratio

	surfaceRight := surface.Right * ratio
	surfaceLeft := surface.Left * ratio
	surfaceBottom := surface.Bottom * ratio
	surfaceTop := surface.Top * ratio

	surfaceWidth := surface.Width() * ratio
	surfaceHeight := surface.Height() * ratio

	right := math.Min(elemRight, surfaceRight) - surfaceLeft
	left := math.Max(0, elemLeft-surfaceLeft)
	bottom := math.Min(elemBottom, surfaceBottom) - surfaceTop
	top := math.Max(0, elemTop-surfaceTop)

	width := math.Max(0, math.Min(surfaceWidth, right-left))
	height := math.Max(0, math.Min(surfaceHeight, bottom-top))

	vp := Viewport{
		X:      left,
		Y:      surfaceHeight - bottom,
		Width:  width,
		Height: height,
	}
	return vp, vp.Aspect()
}
