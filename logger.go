package vib3

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for vib3 and its sub-packages.
// By default, vib3 produces no log output. Pass nil to restore silence.
//
// Log levels used by vib3:
//   - [slog.LevelDebug]: per-frame diagnostics (resizes, scissor rectangles)
//   - [slog.LevelInfo]: lifecycle events (loop started/stopped, split view toggled)
//   - [slog.LevelWarn]: frame failures; the loop keeps running
//
// Example:
//
//	vib3.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by vib3.
// Sub-packages (ggrender/, host/...) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
