// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost runs a vib3 view in an ebiten window.
//
// Layout reports the window size and device scale factor to vib3, Draw runs
// the pending frame and uploads the rendered image, and Update forwards
// mouse input as vib3 pointer events.
//
// Keys:
//   - S toggles split view
//   - F toggles fog
//   - P saves the current frame as PNG
//   - Escape quits
package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"github.com/gogpu/vib3"
)

// ErrNoView is returned by Run when no Vib3 is attached.
var ErrNoView = errors.New("ebitenhost: no view attached")

// Source is the renderer side of a frame: ggrender.Renderer implements it.
type Source interface {
	Image() image.Image
	EndFrame() error
	SavePNG(path string) error
}

// Config configures the window.
type Config struct {
	Title  string
	Width  int
	Height int

	// ScreenshotDir is where P saves frames. Empty means the working directory.
	ScreenshotDir string
}

// Host is a vib3.Host backed by an ebiten window. It implements ebiten.Game.
//
// Host is NOT safe for concurrent use; ebiten calls it from its game loop.
type Host struct {
	cfg   Config
	rect  vib3.Rect
	ratio float64
	start time.Time

	pending func(timeMs float64)
	frame   int

	v   *vib3.Vib3
	src Source

	pointer pointerTracker
	staging *image.RGBA
	texture *ebiten.Image
}

// New creates a host whose client rect starts at the configured size.
func New(cfg Config) *Host {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	return &Host{
		cfg:   cfg,
		rect:  vib3.RectXYWH(0, 0, float64(cfg.Width), float64(cfg.Height)),
		ratio: 1,
		start: time.Now(),
	}
}

// ClientRect returns the window's client rect in logical pixels.
func (h *Host) ClientRect() vib3.Rect { return h.rect }

// PixelRatio returns the device scale factor.
func (h *Host) PixelRatio() float64 { return h.ratio }

// SetClientSize resizes the window.
func (h *Host) SetClientSize(width, height float64) {
	ebiten.SetWindowSize(int(width), int(height))
}

// RequestFrame queues fn for the next Draw.
func (h *Host) RequestFrame(fn func(timeMs float64)) { h.pending = fn }

// Attach binds the view and the renderer it draws with.
func (h *Host) Attach(v *vib3.Vib3, src Source) {
	h.v = v
	h.src = src
}

// Run opens the window and blocks until it is closed.
func (h *Host) Run() error {
	if h.v == nil || h.src == nil {
		return ErrNoView
	}
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout records the window geometry and asks for a device-resolution screen.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := ebiten.Monitor().DeviceScaleFactor()
	if ratio <= 0 {
		ratio = 1
	}
	h.ratio = ratio
	h.rect = vib3.RectXYWH(0, 0, float64(outsideWidth), float64(outsideHeight))
	w, ht := vib3.DisplaySize(float64(outsideWidth), float64(outsideHeight), ratio)
	return w, ht
}

// Update handles keyboard and mouse input.
func (h *Host) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		h.v.ToggleSplitView()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		toggleFog(h.v)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		h.screenshot()
	}

	cx, cy := ebiten.CursorPosition()
	x, y := logicalCursor(cx, cy, h.ratio)
	_, wheel := ebiten.Wheel()
	for _, e := range h.pointer.events(mouseState{
		x:            x,
		y:            y,
		wheel:        wheel,
		leftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		rightPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
	}) {
		h.v.DispatchPointer(e)
	}
	return nil
}

// Draw runs the pending frame and shows the result.
func (h *Host) Draw(screen *ebiten.Image) {
	if fn := h.pending; fn != nil {
		h.pending = nil
		fn(float64(time.Since(h.start)) / float64(time.Millisecond))
		if err := h.src.EndFrame(); err != nil {
			vib3.Logger().Warn("ebitenhost: end frame", "err", err)
		}
		h.frame++
		h.upload(h.src.Image())
	}
	if h.texture != nil {
		screen.DrawImage(h.texture, nil)
	}
}

// upload copies img into the screen texture, reallocating on resize.
func (h *Host) upload(img image.Image) {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		if h.staging == nil || h.staging.Bounds().Size() != b.Size() {
			h.staging = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		}
		draw.Draw(h.staging, h.staging.Bounds(), img, b.Min, draw.Src)
		rgba = h.staging
	}
	if h.texture == nil || h.texture.Bounds().Size() != b.Size() {
		if h.texture != nil {
			h.texture.Deallocate()
		}
		h.texture = ebiten.NewImage(b.Dx(), b.Dy())
	}
	h.texture.WritePixels(rgba.Pix)
}

func (h *Host) screenshot() {
	path := filepath.Join(h.cfg.ScreenshotDir, fmt.Sprintf("vib3-%04d.png", h.frame))
	if err := h.src.SavePNG(path); err != nil {
		vib3.Logger().Warn("ebitenhost: screenshot", "path", path, "err", err)
		return
	}
	vib3.Logger().Info("ebitenhost: screenshot saved", "path", path)
}

// toggleFog switches between no fog and default linear fog.
func toggleFog(v *vib3.Vib3) {
	if v.Scene().Fog != nil {
		v.DisableFog()
		return
	}
	v.EnableFog()
}
