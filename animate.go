package vib3

import (
	"context"
	"fmt"
	"log/slog"
)

// FrameStats counts what the frame driver has done.
type FrameStats struct {
	// Frames is the number of frames attempted.
	Frames uint64

	// RenderCalls is the number of Renderer.Render calls issued.
	RenderCalls uint64

	// Errors is the number of frames that failed.
	Errors uint64

	// LastTimeMs is the timestamp of the latest frame.
	LastTimeMs float64

	// LastError is the error of the latest failed frame.
	LastError error
}

type loopState struct {
	ctx     context.Context
	running bool
	gen     uint64
}

func (v *Vib3) logger() *slog.Logger {
	if v.opts.logger != nil {
		return v.opts.logger
	}
	return Logger()
}

// Frame runs one frame at timeMs milliseconds since the host started.
//
// In order it matches the backing size to the presented size, runs the
// animations, picks the camera and renders once, or twice with split view.
// A frame without cameras, or with an out-of-range camera index, fails
// after the animations ran and before anything is drawn.
func (v *Vib3) Frame(timeMs float64) error {
	v.stats.Frames++
	v.stats.LastTimeMs = timeMs

	err := v.frame(timeMs)
	if err != nil {
		v.stats.Errors++
		v.stats.LastError = err
	}
	return err
}

func (v *Vib3) frame(timeMs float64) error {
	if v.resizeRenderer && v.resizeRendererToDisplaySize() {
		v.updateCameraAspects()
	}

	timeS := timeMs * 0.001
	for _, anim := range v.animations {
		anim(timeS, timeMs)
	}

	if len(v.cameras) == 0 {
		return ErrNoCamera
	}
	idx := 0
	if v.cameraSupplier != nil {
		idx = v.cameraSupplier(timeS, timeMs)
	}
	if idx < 0 || idx >= len(v.cameras) {
		return fmt.Errorf("%w: %d of %d", ErrCameraIndex, idx, len(v.cameras))
	}
	cam := v.cameras[idx]

	if v.views != nil {
		return v.renderSplit(cam, v.helperAt(idx))
	}
	if err := v.render(cam); err != nil {
		return fmt.Errorf("vib3: render: %w", err)
	}
	return nil
}

func (v *Vib3) render(cam Camera) error {
	v.stats.RenderCalls++
	return v.renderer.Render(v.scene, cam)
}

// helperAt returns the helper for camera i, or nil when there is none.
func (v *Vib3) helperAt(i int) CameraHelper {
	if i < 0 || i >= len(v.cameraHelpers) {
		return nil
	}
	return v.cameraHelpers[i]
}

// Start validates the configuration and schedules frames on the host until
// Stop is called or ctx is done. A failed frame is logged and the loop
// keeps going; see Stats for the count.
func (v *Vib3) Start(ctx context.Context) error {
	if v.loop.running {
		return ErrRunning
	}
	if err := v.Validate(); err != nil {
		return err
	}
	v.loop.ctx = ctx
	v.loop.running = true
	v.loop.gen++
	v.schedule(v.loop.gen)
	v.logger().Info("vib3: loop started", "cameras", len(v.cameras), "split", v.views != nil)
	return nil
}

// Stop ends the frame loop. The pending frame, if any, becomes a no-op.
func (v *Vib3) Stop() {
	if !v.loop.running {
		return
	}
	v.loop.running = false
	v.logger().Info("vib3: loop stopped", "frames", v.stats.Frames)
}

// Running reports whether the frame loop is scheduled.
func (v *Vib3) Running() bool { return v.loop.running }

// Stats returns the frame counters.
func (v *Vib3) Stats() FrameStats { return v.stats }

func (v *Vib3) schedule(gen uint64) {
	v.host.RequestFrame(func(timeMs float64) {
		v.tick(gen, timeMs)
	})
}

// tick runs a scheduled frame. Callbacks from an earlier Start are ignored.
func (v *Vib3) tick(gen uint64, timeMs float64) {
	if !v.loop.running || gen != v.loop.gen {
		return
	}
	if err := v.loop.ctx.Err(); err != nil {
		v.loop.running = false
		v.logger().Info("vib3: loop stopped", "frames", v.stats.Frames, "reason", err)
		return
	}
	if err := v.Frame(timeMs); err != nil {
		v.logger().Warn("vib3: frame failed", "time_ms", timeMs, "err", err)
	}
	if v.loop.running && gen == v.loop.gen {
		v.schedule(gen)
	}
}
