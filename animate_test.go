package vib3

import (
	"context"
	"errors"
	"testing"
)

func TestFrameNoCamera(t *testing.T) {
	v, r, host := newFixture(t, 100, 100)
	ran := 0
	v.AddAnimation(func(float64, float64) { ran++ })
	host.rect = RectXYWH(0, 0, 120, 80)

	if err := v.Frame(0); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Frame() error = %v, want ErrNoCamera", err)
	}
	if len(r.renders) != 0 {
		t.Errorf("rendered %d times without a camera", len(r.renders))
	}
	if ran != 1 {
		t.Errorf("animation ran %d times, want 1", ran)
	}
	if len(r.sizes) != 1 || r.sizes[0] != (sizeCall{120, 80, false}) {
		t.Errorf("SetSize calls = %+v, want (120, 80, false)", r.sizes)
	}
}

func TestFrameRunsAnimationsInOrder(t *testing.T) {
	v, _, _ := newFixture(t, 100, 100)
	v.WithCameras(newCam())

	type call struct {
		id            int
		timeS, timeMs float64
	}
	var calls []call
	for id := range 3 {
		v.AddAnimation(func(s, ms float64) {
			calls = append(calls, call{id, s, ms})
		})
	}
	if err := v.Frame(1500); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if len(calls) != 3 {
		t.Fatalf("animations ran %d times, want 3", len(calls))
	}
	for i, c := range calls {
		if c.id != i || c.timeS != 1.5 || c.timeMs != 1500 {
			t.Errorf("call %d = %+v, want id %d at 1.5s/1500ms", i, c, i)
		}
	}
}

func TestFrameCameraSupplier(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr error
	}{
		{"first", 0, nil},
		{"last", 2, nil},
		{"past end", 3, ErrCameraIndex},
		{"negative", -1, ErrCameraIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, r, _ := newFixture(t, 100, 100)
			cams := []Camera{newCam(), newCam(), newCam()}
			var gotS, gotMs float64
			v.WithCameras(cams...).WithCameraSupplier(func(s, ms float64) int {
				gotS, gotMs = s, ms
				return tt.index
			})

			err := v.Frame(250)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Frame() error = %v, want %v", err, tt.wantErr)
			}
			if gotS != 0.25 || gotMs != 250 {
				t.Errorf("supplier got (%v, %v), want (0.25, 250)", gotS, gotMs)
			}
			if tt.wantErr != nil {
				if len(r.renders) != 0 {
					t.Errorf("rendered %d times after a bad index", len(r.renders))
				}
				return
			}
			if len(r.renders) != 1 || r.renders[0].cam != cams[tt.index] {
				t.Errorf("rendered with wrong camera: %+v", r.renders)
			}
		})
	}
}

func TestFrameDefaultsToFirstCamera(t *testing.T) {
	v, r, _ := newFixture(t, 100, 100)
	first := newCam()
	v.WithCameras(first, newCam())
	if err := v.Frame(0); err != nil {
		t.Fatal(err)
	}
	if len(r.renders) != 1 || r.renders[0].cam != Camera(first) {
		t.Error("frame without supplier did not render the first camera")
	}
	if r.renders[0].scissorTest {
		t.Error("single view enabled the scissor test")
	}
}

func TestFrameRenderError(t *testing.T) {
	v, r, _ := newFixture(t, 100, 100)
	v.WithCameras(newCam())
	r.err = errors.New("device lost")

	err := v.Frame(0)
	if !errors.Is(err, r.err) {
		t.Fatalf("Frame() error = %v, want wrapped %v", err, r.err)
	}
	st := v.Stats()
	if st.Frames != 1 || st.Errors != 1 || st.RenderCalls != 1 || !errors.Is(st.LastError, r.err) {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestStartRunsFrames(t *testing.T) {
	v, r, host := newFixture(t, 100, 100)
	v.WithCameras(newCam())

	if err := v.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !v.Running() {
		t.Error("Running() = false after Start")
	}
	for i := range 3 {
		if !host.step(float64(i * 16)) {
			t.Fatalf("step %d: no frame requested", i)
		}
	}
	if len(r.renders) != 3 {
		t.Errorf("rendered %d frames, want 3", len(r.renders))
	}
	st := v.Stats()
	if st.Frames != 3 || st.RenderCalls != 3 || st.LastTimeMs != 32 {
		t.Errorf("Stats() = %+v", st)
	}
	if host.pending == nil {
		t.Error("running loop did not request the next frame")
	}
}

func TestStartTwice(t *testing.T) {
	v, _, _ := newFixture(t, 100, 100)
	v.WithCameras(newCam())
	if err := v.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := v.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start() error = %v, want ErrRunning", err)
	}
}

func TestStartValidates(t *testing.T) {
	v, _, host := newFixture(t, 100, 100)
	if err := v.Start(context.Background()); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Start() error = %v, want ErrNoCamera", err)
	}
	if v.Running() || host.requests != 0 {
		t.Error("failed Start scheduled a frame")
	}
}

func TestStopMakesPendingFrameNoop(t *testing.T) {
	v, r, host := newFixture(t, 100, 100)
	v.WithCameras(newCam())
	if err := v.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	v.Stop()
	if v.Running() {
		t.Error("Running() = true after Stop")
	}
	host.step(16)
	if len(r.renders) != 0 || host.pending != nil {
		t.Errorf("stopped loop rendered %d frames, pending=%v", len(r.renders), host.pending != nil)
	}
}

func TestRestartIgnoresStaleCallback(t *testing.T) {
	v, r, host := newFixture(t, 100, 100)
	v.WithCameras(newCam())
	if err := v.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	stale := host.pending
	v.Stop()
	if err := v.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	stale(0)
	if len(r.renders) != 0 {
		t.Fatalf("stale callback rendered %d frames", len(r.renders))
	}
	host.step(16)
	if len(r.renders) != 1 {
		t.Errorf("current callback rendered %d frames, want 1", len(r.renders))
	}
}

func TestContextCancelStopsLoop(t *testing.T) {
	v, r, host := newFixture(t, 100, 100)
	v.WithCameras(newCam())
	ctx, cancel := context.WithCancel(context.Background())
	if err := v.Start(ctx); err != nil {
		t.Fatal(err)
	}
	host.step(0)
	cancel()
	host.step(16)

	if v.Running() {
		t.Error("Running() = true after context cancel")
	}
	if len(r.renders) != 1 {
		t.Errorf("rendered %d frames, want 1", len(r.renders))
	}
	if host.pending != nil {
		t.Error("cancelled loop requested another frame")
	}
}

func TestLoopSurvivesFrameErrors(t *testing.T) {
	v, _, host := newFixture(t, 100, 100)
	v.WithCameras(newCam()).WithCameraSupplier(func(float64, float64) int { return 5 })
	if err := v.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	host.step(0)
	host.step(16)

	st := v.Stats()
	if st.Errors != 2 || !errors.Is(st.LastError, ErrCameraIndex) {
		t.Errorf("Stats() = %+v, want 2 camera index errors", st)
	}
	if !v.Running() || host.pending == nil {
		t.Error("loop stopped after a failed frame")
	}
}

func TestAnimate(t *testing.T) {
	v, _, host := newFixture(t, 100, 100)
	v.WithCameras(newCam()).Animate()
	if !v.Running() || host.pending == nil {
		t.Error("Animate did not start the loop")
	}

	idle, _, idleHost := newFixture(t, 100, 100)
	idle.Animate()
	if idle.Running() || idleHost.pending != nil {
		t.Error("Animate without cameras started the loop")
	}
}
