package gpudev

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled; want silent")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Info("device opened", "backend", "null")
	if !strings.Contains(buf.String(), "device opened") {
		t.Errorf("configured logger saw no output: %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Info("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("silent logger produced output: %q", buf.String())
	}
}
