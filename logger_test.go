package marquee

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	cfg := Config{Board: BoardOptions{Font: "gothic"}}
	if _, err := cfg.BoardConfig(); err != nil {
		t.Fatalf("BoardConfig: %v", err)
	}
	if !strings.Contains(buf.String(), "unknown font") {
		t.Errorf("log output = %q, want an unknown font warning", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
