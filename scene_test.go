package vib3

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestSceneAddRemove(t *testing.T) {
	s := NewScene()
	a, b := NewBox(1, 1, 1, 0xff0000), NewGrid(10, 2, 0x00ff00)

	s.Add(a, nil, b)
	if got := s.Objects(); len(got) != 2 || got[0] != Drawable(a) || got[1] != Drawable(b) {
		t.Fatalf("Objects() = %v, want [a b]", got)
	}
	if !s.Remove(a) {
		t.Error("Remove(a) = false")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true")
	}
	if got := s.Objects(); len(got) != 1 || got[0] != Drawable(b) {
		t.Errorf("Objects() after remove = %v", got)
	}
}

func TestSceneBackground(t *testing.T) {
	s := NewScene()
	if s.Background != nil || s.BackgroundColor() != 0 {
		t.Error("new scene has a background")
	}
	s.SetBackground(0xabcdef)
	if s.BackgroundColor() != 0xabcdef {
		t.Errorf("BackgroundColor() = %v", s.BackgroundColor())
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		divisions int
		wantSegs  int
	}{
		{1, 4},
		{10, 22},
		{0, 4},
	}
	for _, tt := range tests {
		g := NewGrid(100, tt.divisions, 0x888888)
		if got := len(g.Segments()); got != tt.wantSegs {
			t.Errorf("NewGrid(100, %d) has %d segments, want %d", tt.divisions, got, tt.wantSegs)
		}
		for _, seg := range g.Segments() {
			for _, p := range seg {
				if p.Y != 0 || math32.Abs(p.X) > 50 || math32.Abs(p.Z) > 50 {
					t.Fatalf("grid point %v off the 100x100 XZ square", p)
				}
			}
		}
	}
}

func TestNewBox(t *testing.T) {
	b := NewBox(2, 4, 6, 0x2266cc)
	segs := b.Segments()
	if len(segs) != 12 {
		t.Fatalf("box has %d edges, want 12", len(segs))
	}
	for _, seg := range segs {
		d := seg[1].Sub(seg[0]).Length()
		if d != 2 && d != 4 && d != 6 {
			t.Errorf("edge length %v is not a box dimension", d)
		}
	}
}

func TestWireframePose(t *testing.T) {
	w := NewWireframe(0xffffff, [2]math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0)})
	w.RotateY = math32.Pi / 2
	w.Offset = math32.Vec3(0, 5, 0)

	seg := w.Segments()[0]
	want := [2]math32.Vector3{math32.Vec3(0, 5, -1), math32.Vec3(0, 5, -2)}
	for i := range seg {
		if seg[i].Sub(want[i]).Length() > 1e-5 {
			t.Errorf("point %d = %v, want %v", i, seg[i], want[i])
		}
	}

	w.RotateY, w.Offset = 0, math32.Vector3{}
	if got := w.Segments()[0][1]; got != math32.Vec3(2, 0, 0) {
		t.Errorf("identity pose moved point to %v", got)
	}
}

func TestWireframeVisibility(t *testing.T) {
	w := NewBox(1, 1, 1, 0x102030)
	if !w.Visible() {
		t.Error("new wireframe hidden")
	}
	w.SetVisible(false)
	if w.Visible() {
		t.Error("SetVisible(false) did not hide")
	}
	if got := ColorFrom(w.LineColor()); got != 0x102030 {
		t.Errorf("LineColor() = %v, want #102030", got)
	}
}
