package vib3

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/gogpu/vib3/camera"
	"github.com/gogpu/vib3/orbit"
)

// Vib3 assembles a renderer, a scene, a camera set and an animation loop.
//
// Configuration methods return the receiver so calls chain:
//
//	vib3.Init(renderer, host).
//	    WithCameras(main, top).
//	    WithCameraHelpers(camera.NewHelper(main), camera.NewHelper(top)).
//	    WithCameraSupplier(func(s, _ float64) int { return int(s/5) % 2 }).
//	    EnableFog().
//	    EnableSplitView().
//	    Animate()
//
// Vib3 is NOT safe for concurrent use. All calls, including the frame
// callbacks the host scheduler makes, must happen on one goroutine.
type Vib3 struct {
	renderer Renderer
	host     Host
	opts     options

	scene          *Scene
	cameras        []Camera
	cameraHelpers  []CameraHelper
	animations     []Animation
	cameraSupplier CameraSupplier
	resizeRenderer bool

	views    *views
	controls *binding
	pointer  pointerState

	loop  loopState
	stats FrameStats
}

// views is the split-view pair. It exists only while split view is enabled.
type views struct {
	primary   Element
	secondary Element
	camera    *camera.Perspective
	controls  *binding
}

// binding ties orbit controls to the view whose pointer input drives them.
type binding struct {
	controls *orbit.Controls
	view     Element
}

// New creates a Vib3 drawing with r and driven by h. The renderer is sized
// to the window's client size and an empty scene is created.
func New(r Renderer, h Host, opts ...Option) (*Vib3, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if h == nil {
		return nil, ErrNilHost
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rect := h.ClientRect()
	r.SetSize(int(rect.Width()), int(rect.Height()), false)

	return &Vib3{
		renderer:       r,
		host:           h,
		opts:           o,
		scene:          NewScene(),
		resizeRenderer: o.resize,
	}, nil
}

// Init is like New but panics on error.
// Use only when a nil renderer or host is a programming mistake.
func Init(r Renderer, h Host, opts ...Option) *Vib3 {
	v, err := New(r, h, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Renderer returns the renderer.
func (v *Vib3) Renderer() Renderer { return v.renderer }

// Surface returns the renderer's drawing surface.
func (v *Vib3) Surface() Surface { return v.renderer.Surface() }

// Scene returns the scene.
func (v *Vib3) Scene() *Scene { return v.scene }

// Cameras returns the cameras in insertion order, excluding the split-view
// secondary camera.
func (v *Vib3) Cameras() []Camera { return v.cameras }

// CameraHelpers returns the camera helpers in insertion order, excluding
// any helper of the secondary camera.
func (v *Vib3) CameraHelpers() []CameraHelper { return v.cameraHelpers }

// Animations returns the registered animations.
func (v *Vib3) Animations() []Animation { return v.animations }

// PrimaryView returns the primary split-view region, or the surface when
// split view is disabled.
func (v *Vib3) PrimaryView() Element {
	if v.views != nil {
		return v.views.primary
	}
	return v.renderer.Surface()
}

// SecondaryView returns the secondary split-view region, or nil.
func (v *Vib3) SecondaryView() Element {
	if v.views == nil {
		return nil
	}
	return v.views.secondary
}

// SecondaryCamera returns the split-view secondary camera, or nil.
func (v *Vib3) SecondaryCamera() *camera.Perspective {
	if v.views == nil {
		return nil
	}
	return v.views.camera
}

// SplitViewEnabled reports whether split view is on.
func (v *Vib3) SplitViewEnabled() bool { return v.views != nil }

// BackgroundColor returns the scene background colour, or 0 when the scene
// has no background.
func (v *Vib3) BackgroundColor() Color { return v.scene.BackgroundColor() }

// Capabilities returns the renderer capabilities.
func (v *Vib3) Capabilities() Capabilities { return v.renderer.Capabilities() }

// OrbitControls returns the orbit controls bound by EnableOrbitControlsFor, or nil.
func (v *Vib3) OrbitControls() *orbit.Controls {
	if v.controls == nil {
		return nil
	}
	return v.controls.controls
}

// WithRendererSize resizes the renderer. With updateStyle the presented
// size changes too, where the window supports it.
func (v *Vib3) WithRendererSize(width, height int, updateStyle bool) *Vib3 {
	v.renderer.SetSize(width, height, updateStyle)
	return v
}

// AddCamera appends a camera.
func (v *Vib3) AddCamera(cam Camera) *Vib3 {
	v.cameras = append(v.cameras, cam)
	return v
}

// WithCameras appends cameras in order. A camera supplier can then switch
// between them by index.
func (v *Vib3) WithCameras(cams ...Camera) *Vib3 {
	v.cameras = append(v.cameras, cams...)
	return v
}

// WithCameraHelpers appends camera helpers and adds them to the scene.
// Helper i visualizes camera i.
func (v *Vib3) WithCameraHelpers(helpers ...CameraHelper) *Vib3 {
	for _, h := range helpers {
		v.scene.Add(h)
	}
	v.cameraHelpers = append(v.cameraHelpers, helpers...)
	return v
}

// AddAnimation appends per-frame callbacks, run in insertion order.
func (v *Vib3) AddAnimation(anims ...Animation) *Vib3 {
	v.animations = append(v.animations, anims...)
	return v
}

// WithCameraSupplier sets the function that picks the active camera each frame.
func (v *Vib3) WithCameraSupplier(fn CameraSupplier) *Vib3 {
	v.cameraSupplier = fn
	return v
}

// WithSceneColor sets the scene background colour.
func (v *Vib3) WithSceneColor(c Color) *Vib3 {
	v.scene.SetBackground(c)
	return v
}

// EnableShadow turns on the renderer's shadow map.
func (v *Vib3) EnableShadow() *Vib3 {
	v.renderer.SetShadowMap(true)
	return v
}

// EnablePhysicallyCorrectLights turns on physically correct light falloff.
func (v *Vib3) EnablePhysicallyCorrectLights() *Vib3 {
	v.renderer.SetPhysicallyCorrectLights(true)
	return v
}

// EnableFog turns on linear fog and matches the background to it.
// Without options the fog is DefaultFogColor from DefaultFogNear to DefaultFogFar.
func (v *Vib3) EnableFog(opts ...FogOption) *Vib3 {
	o := defaultFogOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := DefaultFogColor
	if o.color != nil {
		c = *o.color
	}
	v.scene.Fog = LinearFog{Color: c, Near: o.near, Far: o.far}
	return v.MatchSceneAndFogColors()
}

// EnableFogExp2 turns on exponential fog and matches the background to it.
// Without a colour option the fog takes the current background colour, or
// DefaultFogColor when that is black or unset.
func (v *Vib3) EnableFogExp2(opts ...FogOption) *Vib3 {
	o := defaultFogOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := v.BackgroundColor()
	if c == 0 {
		c = DefaultFogColor
	}
	if o.color != nil {
		c = *o.color
	}
	v.scene.Fog = ExpFog{Color: c, Density: o.density}
	return v.MatchSceneAndFogColors()
}

// DisableFog removes scene fog. The background is left as is.
func (v *Vib3) DisableFog() *Vib3 {
	v.scene.Fog = nil
	return v
}

// MatchSceneAndFogColors sets the background to the fog colour when fog is on.
func (v *Vib3) MatchSceneAndFogColors() *Vib3 {
	if v.scene.Fog != nil {
		v.scene.SetBackground(v.scene.Fog.FogColor())
	}
	return v
}

// EnableOrbitControlsFor binds orbit controls to cam around target.
// Pointer input over view drives them; view defaults to PrimaryView.
// Controls bound earlier are disposed.
func (v *Vib3) EnableOrbitControlsFor(cam orbit.Camera, target math32.Vector3, view ...Element) *Vib3 {
	elem := v.PrimaryView()
	if len(view) > 0 && view[0] != nil {
		elem = view[0]
	}
	c := orbit.New(cam, target)
	c.Update()

	if v.controls != nil {
		v.controls.controls.Dispose()
	}
	v.controls = &binding{controls: c, view: elem}
	return v
}

// DisableRendererResize stops the frame driver from matching the backing
// size to the presented size.
func (v *Vib3) DisableRendererResize() *Vib3 {
	v.resizeRenderer = false
	return v
}

// Validate checks the configuration a frame depends on.
func (v *Vib3) Validate() error {
	if len(v.cameras) == 0 {
		return ErrNoCamera
	}
	if n := len(v.cameraHelpers); n != 0 && n != len(v.cameras) {
		return fmt.Errorf("%w: %d helpers for %d cameras", ErrHelperMismatch, n, len(v.cameras))
	}
	return nil
}

// Animate starts the frame loop; see Start. Errors are logged.
func (v *Vib3) Animate() *Vib3 {
	if err := v.Start(context.Background()); err != nil {
		Logger().Error("vib3: animate", "err", err)
	}
	return v
}
