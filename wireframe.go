package vib3

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Wireframe is a single-colour set of line segments with a simple pose:
// a rotation about the Y axis followed by a translation.
type Wireframe struct {
	Color    Color
	Offset   math32.Vector3
	RotateY  float32
	segments [][2]math32.Vector3
	hidden   bool
}

// NewWireframe creates a wireframe from local-space segments.
func NewWireframe(c Color, segments ...[2]math32.Vector3) *Wireframe {
	return &Wireframe{Color: c, segments: segments}
}

// NewGrid creates a square grid on the XZ plane centred on the origin.
func NewGrid(size float32, divisions int, c Color) *Wireframe {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float32(divisions)
	w := &Wireframe{Color: c}
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		w.segments = append(w.segments,
			[2]math32.Vector3{math32.Vec3(-half, 0, k), math32.Vec3(half, 0, k)},
			[2]math32.Vector3{math32.Vec3(k, 0, -half), math32.Vec3(k, 0, half)},
		)
	}
	return w
}

// NewBox creates the twelve edges of a box centred on the origin.
func NewBox(width, height, depth float32, c Color) *Wireframe {
	x, y, z := width/2, height/2, depth/2
	v := [8]math32.Vector3{
		math32.Vec3(-x, -y, -z), math32.Vec3(x, -y, -z), math32.Vec3(x, y, -z), math32.Vec3(-x, y, -z),
		math32.Vec3(-x, -y, z), math32.Vec3(x, -y, z), math32.Vec3(x, y, z), math32.Vec3(-x, y, z),
	}
	return &Wireframe{Color: c, segments: boxEdges(v)}
}

// boxEdges returns the edges of a hexahedron whose first four corners form
// one face and last four the opposite face, in matching order.
func boxEdges(v [8]math32.Vector3) [][2]math32.Vector3 {
	edges := make([][2]math32.Vector3, 0, 12)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		edges = append(edges,
			[2]math32.Vector3{v[i], v[j]},
			[2]math32.Vector3{v[i+4], v[j+4]},
			[2]math32.Vector3{v[i], v[i+4]},
		)
	}
	return edges
}

// Visible implements Drawable.
func (w *Wireframe) Visible() bool { return !w.hidden }

// SetVisible shows or hides the wireframe.
func (w *Wireframe) SetVisible(visible bool) { w.hidden = !visible }

// LineColor implements Drawable.
func (w *Wireframe) LineColor() color.Color { return w.Color.NRGBA() }

// Segments implements Drawable, returning world-space segments.
func (w *Wireframe) Segments() [][2]math32.Vector3 {
	if w.RotateY == 0 && w.Offset == (math32.Vector3{}) {
		return w.segments
	}
	s, c := math32.Sin(w.RotateY), math32.Cos(w.RotateY)
	place := func(p math32.Vector3) math32.Vector3 {
		return math32.Vec3(p.X*c+p.Z*s, p.Y, -p.X*s+p.Z*c).Add(w.Offset)
	}
	out := make([][2]math32.Vector3, len(w.segments))
	for i, seg := range w.segments {
		out[i] = [2]math32.Vector3{place(seg[0]), place(seg[1])}
	}
	return out
}
