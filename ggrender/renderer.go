// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggrender implements vib3.Renderer on a gogpu/gg drawing context.
//
// Drawables are line sets. Each segment is transformed into camera space,
// clipped against the near and far planes, projected into the active
// viewport and stroked. Fog blends the line colour toward the fog colour
// by the segment's mid depth.
//
// Scissor and viewport rectangles arrive in bottom-left device pixels and
// are flipped to gg's top-left coordinates when drawing.
//
//	r, err := ggrender.New(win, ggrender.WithLineWidth(1.5))
//	if err != nil {
//	    return err
//	}
//	v := vib3.Init(r, host)
package ggrender

import (
	"fmt"
	"image"
	"io"
	"math"

	"cogentcore.org/core/math32"
	"github.com/gogpu/gg"

	"github.com/gogpu/vib3"
)

// Renderer draws vib3 scenes into a gg.Context.
//
// Renderer is also the vib3.Surface it draws on: BoundingRect and
// ClientSize follow the window, BackingSize follows the drawing context.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	win    vib3.Window
	target Target
	opts   options
	closed bool

	scissorTest bool
	scissor     vib3.Viewport
	viewport    vib3.Viewport

	shadowMap         bool
	physicallyCorrect bool

	frame   FrameStats
	overlay *overlay
}

// FrameStats counts the work of the current frame. EndFrame resets it.
type FrameStats struct {
	Renders  int
	Segments int
	Culled   int
}

// New creates a renderer for win. Unless WithTarget is given the renderer
// draws into its own gg.Context sized to the window's client rect.
func New(win vib3.Window, opts ...Option) (*Renderer, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rect := win.ClientRect()
	w, h := backingSize(rect.Width(), rect.Height(), o.pixelRatio)
	t := o.target
	if t == nil {
		t = newContextTarget(w, h)
	} else if err := t.Resize(w, h); err != nil {
		return nil, fmt.Errorf("ggrender: resize target: %w", err)
	}

	r := &Renderer{win: win, target: t, opts: o}
	t.Context().SetRasterizerMode(o.rasterizer)
	r.resetViewport()
	if o.overlay {
		ov, err := newOverlay(o.overlaySize)
		if err != nil {
			return nil, err
		}
		r.overlay = ov
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(win vib3.Window, opts ...Option) *Renderer {
	r, err := New(win, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// backingSize scales a size by ratio and keeps it drawable.
func backingSize(w, h, ratio float64) (int, int) {
	bw := int(math.Floor(w * ratio))
	bh := int(math.Floor(h * ratio))
	return max(bw, 1), max(bh, 1)
}

// Context returns the gg.Context frames are drawn into.
func (r *Renderer) Context() *gg.Context { return r.target.Context() }

// Target returns the current draw target.
func (r *Renderer) Target() Target { return r.target }

// SetTarget switches to a new draw target and sizes it to the current
// backing size.
func (r *Renderer) SetTarget(t Target) error {
	if t == nil {
		return nil
	}
	w, h := r.BackingSize()
	if err := t.Resize(w, h); err != nil {
		return fmt.Errorf("ggrender: resize target: %w", err)
	}
	t.Context().SetRasterizerMode(r.opts.rasterizer)
	r.target = t
	return nil
}

// Surface returns the renderer itself.
func (r *Renderer) Surface() vib3.Surface { return r }

// BoundingRect returns the window's client rect.
func (r *Renderer) BoundingRect() vib3.Rect { return r.win.ClientRect() }

// ClientSize returns the presented size in logical pixels.
func (r *Renderer) ClientSize() (width, height float64) {
	rect := r.win.ClientRect()
	return rect.Width(), rect.Height()
}

// BackingSize returns the drawing buffer size in device pixels.
func (r *Renderer) BackingSize() (width, height int) {
	dc := r.target.Context()
	return dc.Width(), dc.Height()
}

// PixelRatio returns the renderer's own pixel ratio.
func (r *Renderer) PixelRatio() float64 { return r.opts.pixelRatio }

// SetSize resizes the drawing buffer to width×height times the pixel
// ratio. With updateStyle the window is asked to present at width×height
// when it implements vib3.WindowResizer. Viewport and scissor reset to the
// full buffer.
func (r *Renderer) SetSize(width, height int, updateStyle bool) {
	bw, bh := backingSize(float64(width), float64(height), r.opts.pixelRatio)
	if err := r.target.Resize(bw, bh); err != nil {
		vib3.Logger().Warn("ggrender: resize failed", "width", bw, "height", bh, "err", err)
		return
	}
	if updateStyle {
		if wr, ok := r.win.(vib3.WindowResizer); ok {
			wr.SetClientSize(float64(width), float64(height))
		}
	}
	r.resetViewport()
	vib3.Logger().Debug("ggrender: size", "width", bw, "height", bh)
}

func (r *Renderer) resetViewport() {
	w, h := r.BackingSize()
	r.viewport = vib3.FullViewport(w, h)
	r.scissor = r.viewport
}

// SetScissorTest enables or disables the scissor rectangle.
func (r *Renderer) SetScissorTest(enabled bool) { r.scissorTest = enabled }

// ScissorTest reports whether the scissor rectangle is honoured.
func (r *Renderer) ScissorTest() bool { return r.scissorTest }

// SetScissor sets the scissor rectangle.
func (r *Renderer) SetScissor(v vib3.Viewport) { r.scissor = v }

// Scissor returns the scissor rectangle.
func (r *Renderer) Scissor() vib3.Viewport { return r.scissor }

// SetViewport sets the rectangle normalized device coordinates map onto.
func (r *Renderer) SetViewport(v vib3.Viewport) { r.viewport = v }

// Viewport returns the viewport rectangle.
func (r *Renderer) Viewport() vib3.Viewport { return r.viewport }

// SetShadowMap records the shadow map setting. Line rendering casts no
// shadows; the flag is reported by ShadowMap.
func (r *Renderer) SetShadowMap(enabled bool) { r.shadowMap = enabled }

// ShadowMap reports the shadow map setting.
func (r *Renderer) ShadowMap() bool { return r.shadowMap }

// SetPhysicallyCorrectLights records the light falloff setting.
func (r *Renderer) SetPhysicallyCorrectLights(enabled bool) { r.physicallyCorrect = enabled }

// PhysicallyCorrectLights reports the light falloff setting.
func (r *Renderer) PhysicallyCorrectLights() bool { return r.physicallyCorrect }

// Stats returns the counters of the current frame.
func (r *Renderer) Stats() FrameStats { return r.frame }

// Render clears the active region and strokes every visible drawable of
// scene as seen through cam.
func (r *Renderer) Render(scene *vib3.Scene, cam vib3.Camera) error {
	if r.closed {
		return ErrClosed
	}
	if scene == nil {
		return ErrNilScene
	}
	if cam == nil {
		return ErrNilCamera
	}
	r.frame.Renders++

	dc := r.target.Context()
	dc.Push()
	defer dc.Pop()

	surfaceH := float64(dc.Height())
	bg := r.opts.clearColor
	if scene.Background != nil {
		bg = *scene.Background
	}

	if r.scissorTest {
		x, y, w, h := topLeft(r.scissor, surfaceH)
		if w <= 0 || h <= 0 {
			return nil
		}
		dc.ClipRect(x, y, w, h)
		dc.SetColor(bg.RGBA().Color())
		dc.DrawRectangle(x, y, w, h)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("ggrender: clear: %w", err)
		}
	} else {
		dc.ClearWithColor(bg.RGBA())
	}

	dc.SetLineWidth(r.opts.lineWidth)
	dc.SetLineCap(gg.LineCapRound)

	near, far := cam.ClipRange()
	var fogColor gg.RGBA
	if scene.Fog != nil {
		fogColor = scene.Fog.FogColor().RGBA()
	}

	for _, d := range scene.Objects() {
		if !d.Visible() {
			continue
		}
		base := gg.FromColor(d.LineColor())
		for _, seg := range d.Segments() {
			a, b, ok := clipDepth(cam.ToView(seg[0]), cam.ToView(seg[1]), near, far)
			if !ok {
				r.frame.Culled++
				continue
			}
			x1, y1 := r.toPixels(cam.ProjectView(a), surfaceH)
			x2, y2 := r.toPixels(cam.ProjectView(b), surfaceH)

			c := base
			if scene.Fog != nil {
				c = base.Lerp(fogColor, float64(scene.Fog.Factor((a.Z+b.Z)/2)))
			}
			dc.SetColor(c.Color())
			dc.DrawLine(x1, y1, x2, y2)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("ggrender: stroke: %w", err)
			}
			r.frame.Segments++
		}
	}
	return nil
}

// toPixels maps normalized device coordinates into the viewport, in gg's
// top-left pixel space.
func (r *Renderer) toPixels(ndc math32.Vector2, surfaceH float64) (x, y float64) {
	vp := r.viewport
	x = vp.X + (float64(ndc.X)+1)/2*vp.Width
	y = surfaceH - (vp.Y + (float64(ndc.Y)+1)/2*vp.Height)
	return x, y
}

// topLeft converts a bottom-left viewport into a top-left rectangle.
func topLeft(v vib3.Viewport, surfaceH float64) (x, y, w, h float64) {
	return v.X, surfaceH - v.Y - v.Height, v.Width, v.Height
}

// EndFrame finishes a frame: it flushes pending GPU work, draws the stats
// overlay when enabled and resets the frame counters.
func (r *Renderer) EndFrame() error {
	if r.closed {
		return ErrClosed
	}
	dc := r.target.Context()
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("ggrender: flush: %w", err)
	}
	if r.overlay != nil {
		r.overlay.draw(dc, r.frame)
	}
	r.frame = FrameStats{}
	return nil
}

// Image returns the current frame.
func (r *Renderer) Image() image.Image { return r.target.Context().Image() }

// SavePNG writes the current frame to path.
func (r *Renderer) SavePNG(path string) error {
	return r.target.Context().SavePNG(path)
}

// EncodePNG writes the current frame to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.target.Context().EncodePNG(w)
}

// Close releases the draw target when it holds resources.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.target.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
