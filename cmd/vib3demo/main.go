// Command vib3demo renders a wireframe scene through two switching
// cameras, with fog, camera helpers, orbit controls and split view.
//
// Configuration comes from -config (TOML) and VIB3_* environment
// variables; see internal/config. The headless host writes PNG frames,
// the ebiten and gogpu hosts open a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/math32"

	"github.com/gogpu/vib3"
	"github.com/gogpu/vib3/camera"
	"github.com/gogpu/vib3/ggrender"
	"github.com/gogpu/vib3/host/ebitenhost"
	"github.com/gogpu/vib3/host/gogpuhost"
	"github.com/gogpu/vib3/host/headless"
	"github.com/gogpu/vib3/internal/config"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("vib3demo: %v", err)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vib3.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("vib3demo failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	switch cfg.Host {
	case config.HostEbiten:
		h := ebitenhost.New(ebitenhost.Config{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
		r, v, err := setup(ctx, h, cfg, logger)
		if err != nil {
			return err
		}
		defer r.Close()
		h.Attach(v, r)
		return h.Run()

	case config.HostGoGPU:
		h := gogpuhost.New(gogpuhost.Config{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
		r, v, err := setup(ctx, h, cfg, logger)
		if err != nil {
			return err
		}
		defer r.Close()
		h.Attach(v, r)
		return h.Run()

	default:
		return runHeadless(ctx, cfg, logger)
	}
}

func runHeadless(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	h := headless.New(float64(cfg.Width), float64(cfg.Height))
	h.SetPixelRatio(cfg.PixelRatio)

	r, v, err := setup(ctx, h, cfg, logger)
	if err != nil {
		return err
	}
	defer r.Close()

	h.OnFrameEnd(func(int) {
		if err := r.EndFrame(); err != nil {
			logger.Warn("end frame", "err", err)
		}
	})
	if dir := cfg.Headless.Dump; dir != "" {
		if err := h.Dump(dir, r); err != nil {
			return err
		}
	}

	err = h.Run(ctx, cfg.Headless.FPS, cfg.Headless.Frames)
	v.Stop()
	st := v.Stats()
	logger.Info("done", "frames", st.Frames, "renders", st.RenderCalls, "errors", st.Errors)
	return err
}

// setup creates the renderer and the view and starts the frame loop.
func setup(ctx context.Context, h vib3.Host, cfg config.Config, logger *slog.Logger) (*ggrender.Renderer, *vib3.Vib3, error) {
	r, err := ggrender.New(h,
		ggrender.WithClearColor(cfg.BackgroundColor()),
		ggrender.WithLineWidth(cfg.Scene.LineWidth),
		ggrender.WithStatsOverlay(cfg.Scene.Stats))
	if err != nil {
		return nil, nil, fmt.Errorf("create renderer: %w", err)
	}
	caps := r.Capabilities()
	logger.Info("renderer", "backend", caps.Backend, "format", caps.Format, "shaders", caps.ShaderCompilation)

	v, err := buildView(r, h, cfg, logger)
	if err != nil {
		r.Close()
		return nil, nil, err
	}
	if err := v.Start(ctx); err != nil {
		r.Close()
		return nil, nil, fmt.Errorf("start: %w", err)
	}
	return r, v, nil
}

// buildView assembles the demo scene: a grid, a spinning box, a
// perspective camera and a top-down orthographic camera that take turns.
func buildView(r vib3.Renderer, h vib3.Host, cfg config.Config, logger *slog.Logger) (*vib3.Vib3, error) {
	origin := math32.Vec3(0, 0, 0)
	aspect := float32(cfg.Width) / float32(cfg.Height)

	persp := camera.NewPerspective(45, aspect, 0.1, 1000)
	persp.SetPosition(math32.Vec3(0, 30, 60))
	persp.LookAt(origin)
	persp.UpdateProjectionMatrix()

	top := camera.NewOrthographic(-aspect, aspect, 1, -1, 0.1, 500)
	top.Zoom = 1.0 / 30
	top.SetUp(math32.Vec3(0, 0, -1))
	top.SetPosition(math32.Vec3(0, 100, 0))
	top.LookAt(origin)
	top.UpdateProjectionMatrix()

	grid := vib3.NewGrid(cfg.Scene.GridSize, cfg.Scene.GridDivision, 0x888888)
	box := vib3.NewBox(10, 10, 10, 0x2266cc)
	box.Offset = math32.Vec3(0, 5, 0)

	v, err := vib3.New(r, h, vib3.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	v.Scene().Add(grid, box)

	period := cfg.Scene.CameraSwitch.Std().Seconds()
	v.WithSceneColor(cfg.BackgroundColor()).
		WithCameras(persp, top).
		WithCameraHelpers(camera.NewHelper(persp), camera.NewHelper(top)).
		AddAnimation(func(timeS, _ float64) {
			box.RotateY = float32(timeS)
		}).
		WithCameraSupplier(func(timeS, _ float64) int {
			if period <= 0 {
				return 0
			}
			return int(timeS/period) % 2
		})

	switch cfg.Scene.Fog {
	case config.FogLinear:
		v.EnableFog(vib3.WithFogColor(cfg.FogColor()), vib3.WithFogRange(10, 250))
	case config.FogExp2:
		v.EnableFogExp2(vib3.WithFogColor(cfg.FogColor()), vib3.WithFogDensity(cfg.Scene.FogDensity))
	}
	if cfg.Scene.OrbitControl {
		v.EnableOrbitControlsFor(persp, origin)
	}
	if cfg.Scene.SplitView {
		v.EnableSplitView()
	}
	return v, v.Validate()
}
