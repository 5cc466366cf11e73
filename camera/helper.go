package camera

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// FrustumSource is a camera a Helper can visualize.
type FrustumSource interface {
	Position() math32.Vector3
	Frustum() [8]math32.Vector3
}

// DefaultHelperColor is the line colour of a new Helper.
var DefaultHelperColor = color.NRGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}

// Helper draws a camera's view volume as a wireframe: the near and far
// rectangles, the edges joining them, and rays from the camera position
// to the near corners.
//
// The helper caches its segments. Call Update after moving the camera or
// changing its projection.
type Helper struct {
	cam      FrustumSource
	color    color.Color
	hidden   bool
	segments [][2]math32.Vector3
}

// NewHelper creates a visible helper for cam.
func NewHelper(cam FrustumSource) *Helper {
	h := &Helper{cam: cam, color: DefaultHelperColor}
	h.Update()
	return h
}

// Camera returns the visualized camera.
func (h *Helper) Camera() FrustumSource { return h.cam }

// Update recomputes the wireframe from the camera.
func (h *Helper) Update() {
	c := h.cam.Frustum()
	segs := h.segments[:0]
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		segs = append(segs,
			[2]math32.Vector3{c[i], c[j]},
			[2]math32.Vector3{c[i+4], c[j+4]},
			[2]math32.Vector3{c[i], c[i+4]},
		)
	}
	pos := h.cam.Position()
	for i := 0; i < 4; i++ {
		segs = append(segs, [2]math32.Vector3{pos, c[i]})
	}
	h.segments = segs
}

// Visible reports whether the helper is drawn.
func (h *Helper) Visible() bool { return !h.hidden }

// SetVisible shows or hides the helper.
func (h *Helper) SetVisible(visible bool) { h.hidden = !visible }

// SetColor changes the line colour.
func (h *Helper) SetColor(c color.Color) { h.color = c }

// LineColor returns the line colour.
func (h *Helper) LineColor() color.Color { return h.color }

// Segments returns the cached wireframe.
func (h *Helper) Segments() [][2]math32.Vector3 { return h.segments }
