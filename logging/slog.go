// Package logging sets up the slog logger lazycal writes to and holds the
// attribute helpers shared by the other packages.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Common log attribute keys.
const (
	KeyOperation = "operation"
	KeyEvent     = "event"
	KeyCount     = "count"
	KeyCalendar  = "calendar"
	KeyRange     = "range"
	KeyError     = "error"
)

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Event returns a slog attribute for an event id.
func Event(id fmt.Stringer) slog.Attr {
	return slog.String(KeyEvent, id.String())
}

// Count returns a slog attribute for a number of items.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Calendar returns a slog attribute for a calendar name.
func Calendar(name string) slog.Attr {
	return slog.String(KeyCalendar, name)
}

// Range returns a slog attribute describing [from, to).
func Range(from, to time.Time) slog.Attr {
	return slog.Group(KeyRange,
		slog.Time("from", from),
		slog.Time("to", to),
	)
}

// Err returns a slog attribute for an error. A nil error gives an empty
// group, which slog drops.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, op string) *slog.Logger {
	return logger.With(Operation(op))
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// DefaultFile returns ~/.lazycal/lazycal.log.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lazycal", "lazycal.log")
	}
	return filepath.Join(home, ".lazycal", "lazycal.log")
}

// OpenFile returns a logger appending to path and the file to close when
// done. The terminal UI owns stdout and stderr, so it logs here.
func OpenFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
