// Package logging builds the structured loggers used by the game and the
// SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "flappy"

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a
// log level. An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger
}

// Stderr creates a logger for long-running commands that own no screen.
func Stderr(level log.Level) *log.Logger {
	return New(os.Stderr, level, Prefix)
}

// File creates a logger for interactive play, where the terminal belongs to
// the game. With an empty path everything is discarded. The returned close
// function is never nil.
func File(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, level, Prefix), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	// No colors in files
	logger := New(f, level, Prefix)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger, f.Close, nil
}
