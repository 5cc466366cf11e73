// Package orbit implements orbit-style camera controls: dragging rotates
// the camera around a target point, a secondary drag pans the target, and
// scrolling dollies toward or away from it.
//
// Controls are input-agnostic. Hosts translate pointer motion into Rotate,
// Pan and Dolly calls with deltas in pixels of the view being dragged.
package orbit

import (
	"cogentcore.org/core/math32"
)

// Camera is the part of a camera the controls move.
type Camera interface {
	Position() math32.Vector3
	SetPosition(pos math32.Vector3)
	LookAt(target math32.Vector3)
	UpdateProjectionMatrix()
}

// minPolar keeps the camera off the poles, where the up axis degenerates.
const minPolar = 1e-4

// Controls orbits a camera around a target.
//
// Controls is NOT safe for concurrent use.
type Controls struct {
	// Enabled gates all input. Disabled controls ignore Rotate, Pan and Dolly.
	Enabled bool

	// RotateSpeed scales rotation; a drag across the full view height
	// turns the camera by 2π·RotateSpeed.
	RotateSpeed float32

	// PanSpeed scales panning.
	PanSpeed float32

	// MinDistance and MaxDistance bound the camera-target distance.
	MinDistance, MaxDistance float32

	// MinPolarAngle and MaxPolarAngle bound the angle from the up axis, in radians.
	MinPolarAngle, MaxPolarAngle float32

	cam      Camera
	target   math32.Vector3
	disposed bool

	thetaDelta float32
	phiDelta   float32
	scale      float32
	pan        math32.Vector3
}

// New creates controls for cam orbiting target. The camera is not moved
// until Update is called.
func New(cam Camera, target math32.Vector3) *Controls {
	return &Controls{
		Enabled:       true,
		RotateSpeed:   1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math32.Pi,
		cam:           cam,
		target:        target,
		scale:         1,
	}
}

// Camera returns the controlled camera.
func (c *Controls) Camera() Camera { return c.cam }

// Target returns the orbit centre.
func (c *Controls) Target() math32.Vector3 { return c.target }

// SetTarget moves the orbit centre. Call Update to re-aim the camera.
func (c *Controls) SetTarget(t math32.Vector3) { c.target = t }

// Disposed reports whether Dispose was called.
func (c *Controls) Disposed() bool { return c.disposed }

// Dispose detaches the controls. Disposed controls ignore all input.
func (c *Controls) Dispose() {
	c.disposed = true
	c.Enabled = false
}

func (c *Controls) active() bool {
	return c.Enabled && !c.disposed
}

// Rotate turns the camera around the target by a pointer drag of (dx, dy)
// pixels in a view viewHeight pixels tall, then updates the camera.
func (c *Controls) Rotate(dx, dy, viewHeight float64) {
	if !c.active() || viewHeight <= 0 {
		return
	}
	k := 2 * math32.Pi * c.RotateSpeed / float32(viewHeight)
	c.thetaDelta -= float32(dx) * k
	c.phiDelta -= float32(dy) * k
	c.Update()
}

// Pan moves camera and target together in the view plane by a pointer
// drag of (dx, dy) pixels in a view viewHeight pixels tall. The move is
// scaled by the target distance so the target tracks the pointer.
func (c *Controls) Pan(dx, dy, viewHeight float64) {
	if !c.active() || viewHeight <= 0 {
		return
	}
	offset := c.cam.Position().Sub(c.target)
	dist := offset.Length()
	if dist == 0 {
		return
	}
	forward := offset.MulScalar(-1 / dist)
	right := forward.Cross(math32.Vec3(0, 1, 0))
	if right.Length() < 1e-6 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()
	up := right.Cross(forward)

	k := 2 * dist * c.PanSpeed / float32(viewHeight)
	c.pan = c.pan.Add(right.MulScalar(-float32(dx) * k)).Add(up.MulScalar(float32(dy) * k))
	c.Update()
}

// Dolly multiplies the camera-target distance by scale: values below 1
// move closer, above 1 move away.
func (c *Controls) Dolly(scale float64) {
	if !c.active() || scale <= 0 {
		return
	}
	c.scale *= float32(scale)
	c.Update()
}

// Update applies pending rotation, pan and dolly, re-aims the camera at the
// target and recomputes its projection. It reports whether the camera moved.
func (c *Controls) Update() bool {
	pos := c.cam.Position()
	offset := pos.Sub(c.target)

	radius := offset.Length()
	var theta, phi float32
	if radius > 0 {
		theta = math32.Atan2(offset.X, offset.Z)
		phi = math32.Acos(clamp(offset.Y/radius, -1, 1))
	} else {
		radius = minPolar
		phi = math32.Pi / 2
	}

	theta += c.thetaDelta
	phi += c.phiDelta
	phi = clamp(phi, c.MinPolarAngle, c.MaxPolarAngle)
	phi = clamp(phi, minPolar, math32.Pi-minPolar)

	radius *= c.scale
	radius = clamp(radius, c.MinDistance, c.MaxDistance)
	if radius < minPolar {
		radius = minPolar
	}

	c.target = c.target.Add(c.pan)

	sinPhi := math32.Sin(phi)
	next := c.target.Add(math32.Vec3(
		radius*sinPhi*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sinPhi*math32.Cos(theta),
	))

	c.thetaDelta, c.phiDelta = 0, 0
	c.scale = 1
	c.pan = math32.Vector3{}

	c.cam.SetPosition(next)
	c.cam.LookAt(c.target)
	c.cam.UpdateProjectionMatrix()
	return next.Sub(pos).Length() > 1e-6
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
