// Package headless provides an offscreen vib3.Host: a window whose geometry
// is set by the caller and a scheduler that runs frames on demand or from a
// ticker.
//
// It drives tests and batch rendering:
//
//	h := headless.New(800, 600)
//	r := ggrender.MustNew(h)
//	v := vib3.Init(r, h).WithCameras(cam).Animate()
//	h.OnFrameEnd(func(int) { _ = r.EndFrame() })
//	h.Dump("frames", r)
//	_ = h.Run(ctx, 30, 90)
package headless

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/vib3"
)

// ErrInvalidRate is returned by Run for a non-positive frame rate.
var ErrInvalidRate = errors.New("headless: frame rate must be positive")

// Window is a window with caller-controlled geometry.
type Window struct {
	rect  vib3.Rect
	ratio float64
}

// ClientRect returns the client rect.
func (w *Window) ClientRect() vib3.Rect { return w.rect }

// PixelRatio returns the pixel ratio.
func (w *Window) PixelRatio() float64 { return w.ratio }

// SetClientSize resizes the client rect, keeping its origin.
func (w *Window) SetClientSize(width, height float64) {
	w.rect = vib3.RectXYWH(w.rect.Left, w.rect.Top, width, height)
}

// SetClientRect replaces the client rect.
func (w *Window) SetClientRect(r vib3.Rect) { w.rect = r }

// SetPixelRatio changes the pixel ratio.
func (w *Window) SetPixelRatio(ratio float64) { w.ratio = ratio }

// Host is an offscreen window plus a manual scheduler.
//
// Host is NOT safe for concurrent use. Step and Run must be called from
// the goroutine that owns the Vib3.
type Host struct {
	Window

	pending func(timeMs float64)
	frame   int
	hooks   []func(frame int)
}

// New creates a host with a width×height client rect at pixel ratio 1.
func New(width, height float64) *Host {
	return &Host{Window: Window{rect: vib3.RectXYWH(0, 0, width, height), ratio: 1}}
}

// RequestFrame queues fn for the next Step. A later request replaces an
// earlier one that has not run yet.
func (h *Host) RequestFrame(fn func(timeMs float64)) {
	h.pending = fn
}

// Pending reports whether a frame is queued.
func (h *Host) Pending() bool { return h.pending != nil }

// Frames returns the number of frames run so far.
func (h *Host) Frames() int { return h.frame }

// OnFrameEnd registers fn to run after every frame with the frame number,
// starting at 0.
func (h *Host) OnFrameEnd(fn func(frame int)) {
	h.hooks = append(h.hooks, fn)
}

// Step runs the queued frame at timeMs and reports whether there was one.
func (h *Host) Step(timeMs float64) bool {
	fn := h.pending
	if fn == nil {
		return false
	}
	h.pending = nil
	fn(timeMs)
	for _, hook := range h.hooks {
		hook(h.frame)
	}
	h.frame++
	return true
}

// Run steps frames at fps until frames have run, no frame is queued, or ctx
// is done. A frames value of 0 means no limit. Frame times are measured
// from the call.
func (h *Host) Run(ctx context.Context, fps float64, frames int) error {
	if fps <= 0 {
		return ErrInvalidRate
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	start := time.Now()
	for n := 0; frames == 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !h.Step(float64(now.Sub(start)) / float64(time.Millisecond)) {
				return nil
			}
		}
	}
	return nil
}

// PNGSaver is a renderer that can write its current frame.
type PNGSaver interface {
	SavePNG(path string) error
}

// Dump writes every finished frame of src to dir as frame-NNNN.png. The
// directory is created if needed. Write failures are logged.
func (h *Host) Dump(dir string, src PNGSaver) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("headless: create dump dir: %w", err)
	}
	h.OnFrameEnd(func(frame int) {
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", frame))
		if err := src.SavePNG(path); err != nil {
			vib3.Logger().Warn("headless: dump failed", "path", path, "err", err)
		}
	})
	return nil
}
