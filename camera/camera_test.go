package camera

import (
	"testing"

	"cogentcore.org/core/math32"
)

const eps = 1e-4

func near(a, b math32.Vector2) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps
}

func lookingAtOrigin[T interface {
	SetPosition(math32.Vector3)
	LookAt(math32.Vector3)
	UpdateProjectionMatrix()
}](c T) T {
	c.SetPosition(math32.Vec3(0, 0, 10))
	c.LookAt(math32.Vec3(0, 0, 0))
	c.UpdateProjectionMatrix()
	return c
}

func TestPoseToView(t *testing.T) {
	c := lookingAtOrigin(NewPerspective(45, 1, 0.1, 100))
	tests := []struct {
		world, want math32.Vector3
	}{
		{math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 10)},
		{math32.Vec3(1, 0, 0), math32.Vec3(1, 0, 10)},
		{math32.Vec3(0, 2, 0), math32.Vec3(0, 2, 10)},
		{math32.Vec3(0, 0, 20), math32.Vec3(0, 0, -10)},
	}
	for _, tt := range tests {
		if got := c.ToView(tt.world); got.Sub(tt.want).Length() > eps {
			t.Errorf("ToView(%v) = %v, want %v", tt.world, got, tt.want)
		}
	}
	if got := c.Forward(); got.Sub(math32.Vec3(0, 0, -1)).Length() > eps {
		t.Errorf("Forward() = %v", got)
	}
}

func TestPerspectiveProject(t *testing.T) {
	c := lookingAtOrigin(NewPerspective(90, 2, 1, 100))
	// at depth 10 the half height is 10 and the half width 20
	tests := []struct {
		name   string
		p      math32.Vector3
		want   math32.Vector2
		inside bool
	}{
		{"centre", math32.Vec3(0, 0, 0), math32.Vec2(0, 0), true},
		{"top edge", math32.Vec3(0, 10, 0), math32.Vec2(0, 1), true},
		{"right edge", math32.Vec3(20, 0, 0), math32.Vec2(1, 0), true},
		{"behind", math32.Vec3(0, 0, 20), math32.Vector2{}, false},
		{"beyond far", math32.Vec3(0, 0, -200), math32.Vector2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Project(tt.p)
			if ok != tt.inside {
				t.Fatalf("Project(%v) ok = %v, want %v", tt.p, ok, tt.inside)
			}
			if ok && !near(got, tt.want) {
				t.Errorf("Project(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPerspectiveSetAspect(t *testing.T) {
	c := lookingAtOrigin(NewPerspective(90, 1, 1, 100))
	c.SetAspect(4)
	c.UpdateProjectionMatrix()
	got, _ := c.Project(math32.Vec3(40, 0, 0))
	if !near(got, math32.Vec2(1, 0)) {
		t.Errorf("Project() after SetAspect(4) = %v, want (1, 0)", got)
	}
	if n, f := c.ClipRange(); n != 1 || f != 100 {
		t.Errorf("ClipRange() = %v, %v", n, f)
	}
}

func TestPerspectiveFrustum(t *testing.T) {
	c := lookingAtOrigin(NewPerspective(90, 1, 1, 10))
	f := c.Frustum()
	// near rectangle at z=9, far rectangle at z=0
	wantNear := math32.Vec3(-1, -1, 9)
	wantFar := math32.Vec3(10, 10, 0)
	if f[0].Sub(wantNear).Length() > eps {
		t.Errorf("near bottom-left = %v, want %v", f[0], wantNear)
	}
	if f[6].Sub(wantFar).Length() > eps {
		t.Errorf("far top-right = %v, want %v", f[6], wantFar)
	}
}

func TestOrthographicProject(t *testing.T) {
	c := lookingAtOrigin(NewOrthographic(-2, 2, 1, -1, 0.1, 100))
	got, ok := c.Project(math32.Vec3(1, 0.5, 0))
	if !ok || !near(got, math32.Vec2(0.5, 0.5)) {
		t.Errorf("Project() = %v, %v, want (0.5, 0.5)", got, ok)
	}

	c.Zoom = 2
	c.UpdateProjectionMatrix()
	got, _ = c.Project(math32.Vec3(1, 0.5, 0))
	if !near(got, math32.Vec2(1, 1)) {
		t.Errorf("Project() at zoom 2 = %v, want (1, 1)", got)
	}

	c.Zoom = 0
	got, _ = c.Project(math32.Vec3(1, 0.5, 0))
	if !near(got, math32.Vec2(0.5, 0.5)) {
		t.Errorf("Project() at zoom 0 = %v, want zoom 1 result", got)
	}
}

func TestOrthographicSetHorizontalExtent(t *testing.T) {
	c := lookingAtOrigin(NewOrthographic(-1, 1, 1, -1, 0.1, 100))
	c.SetHorizontalExtent(-3, 3)
	if c.Left != -3 || c.Right != 3 || c.Top != 1 || c.Bottom != -1 {
		t.Errorf("extent = [%v %v %v %v]", c.Left, c.Right, c.Top, c.Bottom)
	}
	got := c.ProjectView(math32.Vec3(3, 1, 5))
	if !near(got, math32.Vec2(1, 1)) {
		t.Errorf("ProjectView() = %v, want (1, 1)", got)
	}
}

func TestOrthographicFrustumZoom(t *testing.T) {
	c := lookingAtOrigin(NewOrthographic(-4, 4, 2, -2, 1, 5))
	c.Zoom = 2
	f := c.Frustum()
	if want := math32.Vec3(-2, -1, 9); f[0].Sub(want).Length() > eps {
		t.Errorf("near bottom-left = %v, want %v", f[0], want)
	}
	if want := math32.Vec3(2, 1, 5); f[6].Sub(want).Length() > eps {
		t.Errorf("far top-right = %v, want %v", f[6], want)
	}
}

func TestDegenerateProjection(t *testing.T) {
	o := NewOrthographic(1, 1, 1, 1, 0.1, 10)
	if got := o.ProjectView(math32.Vec3(1, 1, 1)); got != (math32.Vector2{}) {
		t.Errorf("zero-size orthographic ProjectView() = %v", got)
	}
	p := NewPerspective(45, 0, 0.1, 10)
	if got := p.ProjectView(math32.Vec3(1, 1, 1)); got != (math32.Vector2{}) {
		t.Errorf("zero-aspect perspective ProjectView() = %v", got)
	}
}

func TestUpHint(t *testing.T) {
	c := NewOrthographic(-1, 1, 1, -1, 0.1, 200)
	c.SetUp(math32.Vec3(0, 0, -1))
	c.SetPosition(math32.Vec3(0, 100, 0))
	c.LookAt(math32.Vec3(0, 0, 0))
	c.UpdateProjectionMatrix()

	// looking down with -Z as up: world -Z projects upward
	got, ok := c.Project(math32.Vec3(0, 0, -0.5))
	if !ok || !near(got, math32.Vec2(0, 0.5)) {
		t.Errorf("Project() = %v, %v, want (0, 0.5)", got, ok)
	}
	if c.Up() != math32.Vec3(0, 0, -1) {
		t.Errorf("Up() = %v", c.Up())
	}
}
