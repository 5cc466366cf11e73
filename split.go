package vib3

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/gogpu/vib3/camera"
	"github.com/gogpu/vib3/orbit"
)

// Secondary camera defaults for EnableSplitView.
const (
	SplitCameraFOV    = 60
	SplitCameraAspect = 2
	SplitCameraNear   = 0.1
	SplitCameraFar    = 500
)

var (
	splitCameraPosition = math32.Vec3(40, 10, 30)
	splitCameraTarget   = math32.Vec3(0, 5, 0)
)

// half selects one side of a split surface.
type half int

const (
	leftHalf half = iota
	rightHalf
)

// region is one half of the surface. Its bounds follow the surface, so
// resizes need no bookkeeping.
type region struct {
	surface Surface
	side    half
}

// BoundingRect returns the half of the surface bounds this region covers.
func (r region) BoundingRect() Rect {
	b := r.surface.BoundingRect()
	mid := b.Left + b.Width()/2
	if r.side == leftHalf {
		b.Right = mid
	} else {
		b.Left = mid
	}
	return b
}

// EnableSplitView divides the surface into a primary left half and a
// secondary right half. The secondary half shows the scene from its own
// perspective camera, with orbit controls and a plain background, while the
// primary half hides the active camera's helper. Orbit controls bound to
// the whole surface move to the primary half.
//
// It is a no-op when split view is already on.
func (v *Vib3) EnableSplitView() *Vib3 {
	if v.views != nil {
		return v
	}
	s := v.renderer.Surface()
	primary := region{surface: s, side: leftHalf}
	secondary := region{surface: s, side: rightHalf}

	cam := v.opts.splitCamera
	if cam == nil {
		cam = camera.NewPerspective(SplitCameraFOV, SplitCameraAspect, SplitCameraNear, SplitCameraFar)
		cam.SetPosition(splitCameraPosition)
		cam.LookAt(splitCameraTarget)
		cam.UpdateProjectionMatrix()
	}
	controls := orbit.New(cam, cam.Target())
	controls.Update()

	if v.controls != nil && v.controls.view == Element(s) {
		v.controls.view = primary
	}
	v.views = &views{
		primary:   primary,
		secondary: secondary,
		camera:    cam,
		controls:  &binding{controls: controls, view: secondary},
	}
	v.logger().Info("vib3: split view enabled")
	return v
}

// DisableSplitView returns to a single full-surface view. The secondary
// camera's controls are disposed and orbit controls bound to the primary
// half move back to the whole surface. Cameras get the full surface's
// aspect back.
func (v *Vib3) DisableSplitView() *Vib3 {
	if v.views == nil {
		return v
	}
	v.views.controls.controls.Dispose()
	if v.pointer.captured == v.views.controls {
		v.pointer = pointerState{}
	}

	s := v.renderer.Surface()
	if v.controls != nil && v.controls.view == v.views.primary {
		v.controls.view = s
	}
	v.views = nil

	v.renderer.SetScissorTest(false)
	bw, bh := s.BackingSize()
	v.renderer.SetViewport(FullViewport(bw, bh))
	v.restoreCameraAspects()
	v.logger().Info("vib3: split view disabled")
	return v
}

// ToggleSplitView flips split view on or off.
func (v *Vib3) ToggleSplitView() *Vib3 {
	if v.views != nil {
		return v.DisableSplitView()
	}
	return v.EnableSplitView()
}

// renderSplit draws the primary view with cam, then the secondary view with
// the split camera over the split background and without fog. The scene's
// background and fog are restored afterwards.
func (v *Vib3) renderSplit(cam Camera, helper CameraHelper) error {
	v.renderer.SetScissorTest(true)

	aspect := v.setScissorForElement(v.views.primary)
	applyAspect(cam, aspect)
	cam.UpdateProjectionMatrix()
	if helper != nil {
		helper.Update()
		helper.SetVisible(false)
	}
	if err := v.render(cam); err != nil {
		return fmt.Errorf("vib3: render primary view: %w", err)
	}

	aspect = v.setScissorForElement(v.views.secondary)
	split := v.views.camera
	applyAspect(split, aspect)
	split.UpdateProjectionMatrix()
	if helper != nil {
		helper.SetVisible(true)
	}

	background, fog := v.scene.Background, v.scene.Fog
	v.scene.SetBackground(v.opts.splitBackground)
	v.scene.Fog = nil
	err := v.render(split)
	v.scene.Background, v.scene.Fog = background, fog
	if err != nil {
		return fmt.Errorf("vib3: render secondary view: %w", err)
	}
	return nil
}

// setScissorForElement points scissor and viewport at elem and returns the
// region's aspect ratio.
func (v *Vib3) setScissorForElement(elem Element) float64 {
	vp, aspect := ScissorForElement(elem.BoundingRect(), v.renderer.Surface().BoundingRect(), v.host.PixelRatio())
	v.renderer.SetScissor(vp)
	v.renderer.SetViewport(vp)
	v.logger().Debug("vib3: scissor", "x", vp.X, "y", vp.Y, "width", vp.Width, "height", vp.Height)
	return aspect
}

// applyAspect reshapes cam for a viewport of the given aspect. Empty
// viewports leave the camera unchanged.
// restoreCameraAspects undoes the half-region aspects renderSplit gave
// the cameras.
func (v *Vib3) restoreCameraAspects() {
	cw, ch := v.renderer.Surface().ClientSize()
	if ch <= 0 {
		return
	}
	for _, cam := range v.cameras {
		applyAspect(cam, cw/ch)
		cam.UpdateProjectionMatrix()
	}
}

func applyAspect(cam Camera, aspect float64) {
	if aspect <= 0 {
		return
	}
	a := float32(aspect)
	switch c := cam.(type) {
	case PerspectiveCamera:
		c.SetAspect(a)
	case OrthographicCamera:
		c.SetHorizontalExtent(-a, a)
	}
}
