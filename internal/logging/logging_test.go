package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_JSONWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "napt.log")

	log, closer, err := New(Config{Level: "info", Format: "json", Path: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Info("hello", "key", "value")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) || !strings.Contains(string(data), `"key":"value"`) {
		t.Fatalf("log file = %q, want JSON line with msg and key", data)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "napt.log")

	log, closer, err := New(Config{Level: "warn", Format: "json", Path: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Info("dropped")
	log.Warn("kept")
	_ = closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Fatalf("log file contains filtered info line: %q", data)
	}
	if !strings.Contains(string(data), "kept") {
		t.Fatalf("log file missing warn line: %q", data)
	}
}

func TestNew_TextFormatCloserIsNoop(t *testing.T) {
	log, closer, err := New(Config{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if log == nil || closer == nil {
		t.Fatalf("New = %v/%v, want logger and closer", log, closer)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
