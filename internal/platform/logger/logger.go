// Package logger configures structured JSON logging. The TUI owns stdout, so
// log output goes to a file under the data directory.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Setup opens (or creates) the log file and installs a JSON slog logger on it
// as the process default. The data directory is created on first run — this is
// the first file the app touches, so nothing earlier has made it yet. The
// returned closer flushes the file on shutdown.
func Setup(path, level string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: parseLevel(level)}))
	slog.SetDefault(log)
	return log, f, nil
}

// Discard returns a logger that drops everything, for tests and one-shot
// commands that do not want a log file.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
