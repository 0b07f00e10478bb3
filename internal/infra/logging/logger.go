// Package logging provides file-based logging for swarmline. Logs go to
// <dir>/logs/swarmline.log so agent output on stdout stays clean.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const logFileName = "swarmline.log"

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to the log file under dir. The returned close
// function releases the file handle.
func New(dir string, level slog.Level) (*slog.Logger, func() error, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := filepath.Join(logsDir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything. Used when logging is
// unconfigured and in tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
