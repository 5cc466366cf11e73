package camera

import "cogentcore.org/core/math32"

// pose is the placement shared by all camera kinds: a position looking at
// a target with an up hint. The orthonormal basis is cached and refreshed
// by UpdateProjectionMatrix.
type pose struct {
	position math32.Vector3
	target   math32.Vector3
	up       math32.Vector3

	right   math32.Vector3
	upAxis  math32.Vector3
	forward math32.Vector3
}

func newPose() pose {
	p := pose{
		target: math32.Vec3(0, 0, -1),
		up:     math32.Vec3(0, 1, 0),
	}
	p.updateBasis()
	return p
}

// Position returns the camera position.
func (p *pose) Position() math32.Vector3 { return p.position }

// Target returns the point the camera looks at.
func (p *pose) Target() math32.Vector3 { return p.target }

// Up returns the up hint.
func (p *pose) Up() math32.Vector3 { return p.up }

// SetPosition moves the camera, keeping its target.
func (p *pose) SetPosition(pos math32.Vector3) {
	p.position = pos
	p.updateBasis()
}

// SetUp changes the up hint.
func (p *pose) SetUp(up math32.Vector3) {
	p.up = up
	p.updateBasis()
}

// LookAt points the camera at target.
func (p *pose) LookAt(target math32.Vector3) {
	p.target = target
	p.updateBasis()
}

// Forward returns the unit view direction.
func (p *pose) Forward() math32.Vector3 { return p.forward }

// ToView maps a world-space point into camera space: X right, Y up, Z depth.
func (p *pose) ToView(pt math32.Vector3) math32.Vector3 {
	d := pt.Sub(p.position)
	return math32.Vec3(d.Dot(p.right), d.Dot(p.upAxis), d.Dot(p.forward))
}

// toWorld is the inverse of ToView.
func (p *pose) toWorld(x, y, z float32) math32.Vector3 {
	return p.position.
		Add(p.right.MulScalar(x)).
		Add(p.upAxis.MulScalar(y)).
		Add(p.forward.MulScalar(z))
}

func (p *pose) updateBasis() {
	f := p.target.Sub(p.position)
	if f.Length() == 0 {
		f = math32.Vec3(0, 0, -1)
	}
	f = f.Normal()

	up := p.up
	if up.Length() == 0 {
		up = math32.Vec3(0, 1, 0)
	}
	r := f.Cross(up)
	if r.Length() < 1e-6 {
		// looking straight along the up hint
		r = f.Cross(math32.Vec3(0, 0, 1))
		if r.Length() < 1e-6 {
			r = f.Cross(math32.Vec3(1, 0, 0))
		}
	}
	r = r.Normal()

	p.forward = f
	p.right = r
	p.upAxis = r.Cross(f)
}

// frustumCorners returns the four corners of the rectangle x∈[l,r],
// y∈[b,t] at depth z, counter-clockwise from bottom-left.
func (p *pose) frustumCorners(l, r, b, t, z float32) [4]math32.Vector3 {
	return [4]math32.Vector3{
		p.toWorld(l, b, z),
		p.toWorld(r, b, z),
		p.toWorld(r, t, z),
		p.toWorld(l, t, z),
	}
}
