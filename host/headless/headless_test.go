package headless

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/vib3"
)

func TestStep(t *testing.T) {
	h := New(100, 50)
	if h.Step(0) {
		t.Fatal("Step() with nothing queued = true")
	}

	var got []float64
	h.RequestFrame(func(ms float64) { got = append(got, ms) })
	if !h.Pending() {
		t.Fatal("Pending() = false after RequestFrame")
	}
	if !h.Step(16) {
		t.Fatal("Step() = false with a queued frame")
	}
	if h.Pending() {
		t.Error("Pending() = true after Step")
	}
	if h.Step(32) {
		t.Error("one-shot frame ran twice")
	}
	if len(got) != 1 || got[0] != 16 {
		t.Errorf("frame times = %v, want [16]", got)
	}
	if h.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", h.Frames())
	}
}

func TestRequestFrameReplaces(t *testing.T) {
	h := New(10, 10)
	var which string
	h.RequestFrame(func(float64) { which = "first" })
	h.RequestFrame(func(float64) { which = "second" })
	h.Step(0)
	if which != "second" {
		t.Errorf("ran %q, want second", which)
	}
}

func TestOnFrameEnd(t *testing.T) {
	h := New(10, 10)
	var frames []int
	h.OnFrameEnd(func(n int) { frames = append(frames, n) })

	for i := 0; i < 3; i++ {
		h.RequestFrame(func(float64) {})
		h.Step(float64(i))
	}
	if len(frames) != 3 || frames[0] != 0 || frames[2] != 2 {
		t.Errorf("frame numbers = %v, want [0 1 2]", frames)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		frames     int
		reschedule bool
		want       int
	}{
		{"limited", 3, true, 3},
		{"stops when idle", 10, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(10, 10)
			n := 0
			var fn func(float64)
			fn = func(float64) {
				n++
				if tt.reschedule {
					h.RequestFrame(fn)
				}
			}
			h.RequestFrame(fn)
			if err := h.Run(context.Background(), 1000, tt.frames); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("ran %d frames, want %d", n, tt.want)
			}
		})
	}
}

func TestRunContextDone(t *testing.T) {
	h := New(10, 10)
	var fn func(float64)
	fn = func(float64) { h.RequestFrame(fn) }
	h.RequestFrame(fn)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx, 1000, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want DeadlineExceeded", err)
	}
}

func TestRunInvalidRate(t *testing.T) {
	if err := New(1, 1).Run(context.Background(), 0, 1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Run(fps=0) error = %v, want ErrInvalidRate", err)
	}
}

type fileSaver struct{}

func (fileSaver) SavePNG(path string) error {
	return os.WriteFile(path, []byte("png"), 0o644)
}

func TestDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	h := New(10, 10)
	if err := h.Dump(dir, fileSaver{}); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		h.RequestFrame(func(float64) {})
		h.Step(0)
	}
	for _, name := range []string{"frame-0000.png", "frame-0001.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestWindow(t *testing.T) {
	h := New(200, 100)
	if got := h.ClientRect(); got != vib3.RectXYWH(0, 0, 200, 100) {
		t.Errorf("ClientRect() = %+v", got)
	}
	h.SetClientSize(50, 25)
	if got := h.ClientRect(); got.Width() != 50 || got.Height() != 25 {
		t.Errorf("ClientRect() after SetClientSize = %+v", got)
	}
	h.SetPixelRatio(2)
	if h.PixelRatio() != 2 {
		t.Errorf("PixelRatio() = %v, want 2", h.PixelRatio())
	}

	var _ vib3.Host = h
	var _ vib3.WindowResizer = h
}
