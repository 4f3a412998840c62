package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"not-a-level", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want charmlog.Level
	}{
		{slog.LevelDebug - 4, charmlog.DebugLevel},
		{slog.LevelDebug, charmlog.DebugLevel},
		{slog.LevelInfo, charmlog.InfoLevel},
		{slog.LevelWarn, charmlog.WarnLevel},
		{slog.LevelError, charmlog.ErrorLevel},
		{slog.LevelError + 4, charmlog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := charmLevel(tt.in); got != tt.want {
			t.Errorf("charmLevel(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, FormatJSON)
	logger.Debug("transformed", "mode", "trim-margin", "lines", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}

	if rec["msg"] != "transformed" {
		t.Errorf("msg = %v; want %q", rec["msg"], "transformed")
	}

	if rec["mode"] != "trim-margin" {
		t.Errorf("mode = %v; want %q", rec["mode"], "trim-margin")
	}
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatText)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record written at warn level: %q", buf.String())
	}

	logger.Warn("shown", "mode", "prepend")
	out := buf.String()
	if !strings.Contains(out, "shown") {
		t.Errorf("output %q does not contain message", out)
	}

	if !strings.Contains(out, "prepend") {
		t.Errorf("output %q does not contain attribute value", out)
	}
}

func TestNew_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "yaml")
	logger.Info("hello")

	if json.Valid(buf.Bytes()) {
		t.Errorf("expected text output, got JSON: %q", buf.String())
	}

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output %q does not contain message", buf.String())
	}
}
