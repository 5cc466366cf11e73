// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuhost runs a vib3 view in a gogpu window.
//
// Frames are drawn by ggrender into a ggcanvas.Canvas and presented on
// every OnDraw:
//
//	gg.Context (vib3 frame) → ggcanvas.Canvas → gogpu.Context → Window
//
// Space toggles split view.
package gogpuhost

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/vib3"
	"github.com/gogpu/vib3/ggrender"
)

// ErrNoView is returned by Run when no Vib3 is attached.
var ErrNoView = errors.New("gogpuhost: no view attached")

// Renderer is the renderer side of a frame: ggrender.Renderer implements it.
type Renderer interface {
	SetTarget(t ggrender.Target) error
	EndFrame() error
}

// Config configures the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Host is a vib3.Host backed by a gogpu App.
//
// Host is NOT safe for concurrent use; gogpu calls it from its render loop.
type Host struct {
	app   *gogpu.App
	rect  vib3.Rect
	start time.Time

	pending func(timeMs float64)

	v      *vib3.Vib3
	r      Renderer
	canvas *ggcanvas.Canvas
}

// New creates the gogpu App. The window opens on Run.
func New(cfg Config) *Host {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))
	return &Host{
		app:   app,
		rect:  vib3.RectXYWH(0, 0, float64(cfg.Width), float64(cfg.Height)),
		start: time.Now(),
	}
}

// ClientRect returns the surface bounds.
func (h *Host) ClientRect() vib3.Rect { return h.rect }

// PixelRatio returns 1: gogpu reports surface sizes in device pixels.
func (h *Host) PixelRatio() float64 { return 1 }

// RequestFrame queues fn for the next OnDraw.
func (h *Host) RequestFrame(fn func(timeMs float64)) { h.pending = fn }

// Attach binds the view and the renderer it draws with.
func (h *Host) Attach(v *vib3.Vib3, r Renderer) {
	h.v = v
	h.r = r
}

// Run opens the window and blocks until it is closed.
func (h *Host) Run() error {
	if h.v == nil || h.r == nil {
		return ErrNoView
	}
	h.app.OnDraw(h.draw)
	h.app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeySpace {
			h.v.ToggleSplitView()
		}
	})
	h.app.OnClose(func() {
		h.v.Stop()
		if a := gg.Accelerator(); a != nil {
			a.Close()
		}
	})
	if err := h.app.Run(); err != nil {
		return fmt.Errorf("gogpuhost: %w", err)
	}
	return nil
}

func (h *Host) draw(dc *gogpu.Context) {
	w, ht := dc.Width(), dc.Height()
	if w <= 0 || ht <= 0 {
		return
	}
	h.rect = vib3.RectXYWH(0, 0, float64(w), float64(ht))

	if h.canvas == nil {
		provider := h.app.GPUContextProvider()
		if provider == nil {
			return
		}
		canvas, err := ggcanvas.New(provider, w, ht)
		if err != nil {
			vib3.Logger().Error("gogpuhost: create canvas", "err", err)
			return
		}
		if err := h.r.SetTarget(canvas); err != nil {
			vib3.Logger().Error("gogpuhost: set target", "err", err)
			return
		}
		h.canvas = canvas
		vib3.Logger().Info("gogpuhost: canvas created", "width", w, "height", ht, "backend", dc.Backend())
	}

	if fn := h.pending; fn != nil {
		h.pending = nil
		fn(float64(time.Since(h.start)) / float64(time.Millisecond))
		if err := h.r.EndFrame(); err != nil {
			vib3.Logger().Warn("gogpuhost: end frame", "err", err)
		}
		h.canvas.MarkDirty()
	}
	if err := h.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		vib3.Logger().Warn("gogpuhost: present", "err", err)
	}
}
