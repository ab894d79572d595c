// Package logging builds the application logger. The TUI owns the terminal,
// so the default sink is a JSON log file under the data directory; the text
// format is a development escape hatch that writes tinted output to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

// noopCloser backs the text format, which writes to stderr and owns no file.
type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// Config holds the configuration of the logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json (file) or text (stderr)
	Path   string // log file path, used by the json format
}

// New creates a logger with the given config. The returned closer releases
// the log file; it is a no-op for the text format.
func New(config Config) (*slog.Logger, io.Closer, error) {
	level := parseLevel(config.Level)

	if config.Format == "text" {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
		return slog.New(handler), noopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})
	return slog.New(handler), file, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
