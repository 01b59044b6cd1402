package gpudev

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
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for gpudev and all its sub-packages.
// By default, gpudev produces no log output. Pass nil to restore the
// default silent behavior. Safe for concurrent use.
//
// Log levels used by gpudev:
//   - [slog.LevelDebug]: request protocol diagnostics
//   - [slog.LevelInfo]: lifecycle events (adapter enumerated, device opened)
//   - [slog.LevelWarn]: non-fatal issues (driver enumeration failure)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gpudev. Sub-packages
// (backend/ and the drivers) call this to share the same configuration
// without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
