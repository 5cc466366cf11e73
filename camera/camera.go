// Package camera provides perspective and orthographic cameras and a
// frustum helper that visualizes them.
//
// Cameras follow the usual right-handed convention: they look down their
// forward axis toward a target, with Y up. Projection parameters are plain
// fields; call UpdateProjectionMatrix after changing them.
//
//	cam := camera.NewPerspective(45, 16.0/9, 0.1, 100)
//	cam.SetPosition(math32.Vec3(0, 10, 30))
//	cam.LookAt(math32.Vec3(0, 0, 0))
//	cam.UpdateProjectionMatrix()
package camera

import "cogentcore.org/core/math32"

// Perspective is a pinhole camera with a vertical field of view in degrees.
type Perspective struct {
	pose

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// Projection is rebuilt by UpdateProjectionMatrix.
	Projection math32.Matrix4
}

// NewPerspective creates a perspective camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		pose:   newPose(),
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetAspect sets the width/height ratio.
func (c *Perspective) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// UpdateProjectionMatrix recomputes the projection after parameter changes.
func (c *Perspective) UpdateProjectionMatrix() {
	c.updateBasis()
	c.Projection.SetPerspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ClipRange returns the near and far planes.
func (c *Perspective) ClipRange() (near, far float32) {
	return c.Near, c.Far
}

// ProjectView maps a camera-space point in front of the camera onto
// normalized device coordinates.
func (c *Perspective) ProjectView(v math32.Vector3) math32.Vector2 {
	t := c.halfHeight(v.Z)
	if t == 0 || c.Aspect == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(v.X/(t*c.Aspect), v.Y/t)
}

// Project maps a world-space point onto normalized device coordinates.
// It reports false when the point is outside the near/far range.
func (c *Perspective) Project(p math32.Vector3) (math32.Vector2, bool) {
	v := c.ToView(p)
	if v.Z < c.Near || v.Z > c.Far {
		return math32.Vector2{}, false
	}
	return c.ProjectView(v), true
}

// Frustum returns the world-space corners of the view volume: the near
// rectangle followed by the far rectangle, each counter-clockwise from
// bottom-left.
func (c *Perspective) Frustum() [8]math32.Vector3 {
	var out [8]math32.Vector3
	for i, z := range [2]float32{c.Near, c.Far} {
		h := c.halfHeight(z)
		w := h * c.Aspect
		q := c.frustumCorners(-w, w, -h, h, z)
		copy(out[i*4:], q[:])
	}
	return out
}

func (c *Perspective) halfHeight(depth float32) float32 {
	return depth * math32.Tan(math32.DegToRad(c.FOV)/2)
}

// Orthographic is a parallel-projection camera bounded by a box in
// camera space.
type Orthographic struct {
	pose

	Left, Right float32
	Top, Bottom float32
	Near, Far   float32

	// Zoom scales the view box: values above 1 magnify. Zero is treated as 1.
	Zoom float32

	// Projection is rebuilt by UpdateProjectionMatrix.
	Projection math32.Matrix4
}

// NewOrthographic creates an orthographic camera at the origin looking down -Z.
func NewOrthographic(left, right, top, bottom, near, far float32) *Orthographic {
	c := &Orthographic{
		pose:   newPose(),
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		Near:   near,
		Far:    far,
		Zoom:   1,
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetHorizontalExtent sets the left and right planes.
func (c *Orthographic) SetHorizontalExtent(left, right float32) {
	c.Left = left
	c.Right = right
}

// UpdateProjectionMatrix recomputes the projection after parameter changes.
// The matrix covers the extent size; ProjectView also honours an
// off-centre extent.
func (c *Orthographic) UpdateProjectionMatrix() {
	c.updateBasis()
	z := c.zoom()
	c.Projection.SetOrthographic((c.Right-c.Left)/z, (c.Top-c.Bottom)/z, c.Near, c.Far)
}

// ClipRange returns the near and far planes.
func (c *Orthographic) ClipRange() (near, far float32) {
	return c.Near, c.Far
}

// ProjectView maps a camera-space point onto normalized device coordinates.
func (c *Orthographic) ProjectView(v math32.Vector3) math32.Vector2 {
	l, r, b, t := c.box()
	w, h := r-l, t-b
	if w == 0 || h == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2((2*v.X-(r+l))/w, (2*v.Y-(t+b))/h)
}

func (c *Orthographic) zoom() float32 {
	if c.Zoom == 0 {
		return 1
	}
	return c.Zoom
}

// box returns the zoomed view box in camera space.
func (c *Orthographic) box() (left, right, bottom, top float32) {
	z := c.zoom()
	cx, cy := (c.Left+c.Right)/2, (c.Top+c.Bottom)/2
	hw, hh := (c.Right-c.Left)/(2*z), (c.Top-c.Bottom)/(2*z)
	return cx - hw, cx + hw, cy - hh, cy + hh
}

// Project maps a world-space point onto normalized device coordinates.
// It reports false when the point is outside the near/far range.
func (c *Orthographic) Project(p math32.Vector3) (math32.Vector2, bool) {
	v := c.ToView(p)
	if v.Z < c.Near || v.Z > c.Far {
		return math32.Vector2{}, false
	}
	return c.ProjectView(v), true
}

// Frustum returns the world-space corners of the view box, near rectangle first.
func (c *Orthographic) Frustum() [8]math32.Vector3 {
	var out [8]math32.Vector3
	l, r, b, t := c.box()
	n := c.frustumCorners(l, r, b, t, c.Near)
	f := c.frustumCorners(l, r, b, t, c.Far)
	copy(out[:4], n[:])
	copy(out[4:], f[:])
	return out
}
