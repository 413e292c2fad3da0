package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelWarn,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"error": slog.LevelError,
		"off":   Off,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", NoColor: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shown", "renderer", "react")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "renderer=react") {
		t.Fatalf("info record missing: %q", out)
	}
}
