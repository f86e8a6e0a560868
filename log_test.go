package rafters

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := newWidgetCard(nil).Settings(); err == nil {
		t.Fatal("Settings() error = nil, want required error")
	}

	out := buf.String()
	for _, want := range []string{"settings resolution failed", "component=widgetCard"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want it to contain %q", out, want)
		}
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	if logger() != slog.Default() {
		t.Error("logger() is not slog.Default() after SetLogger(nil)")
	}
}
