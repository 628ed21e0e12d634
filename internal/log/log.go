// Package log is a small slog front end. Logging is off by default because the
// TUI owns the terminal; Enable or EnableFile turn it on.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	level   = new(slog.LevelVar)
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled bool
	closer  io.Closer
)

func init() {
	level.Set(slog.LevelDebug)
}

// Enable routes log output to w.
func Enable(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	enabled = true
}

// EnableFile appends log output to the file at path, creating parent directories.
func EnableFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	Enable(f)

	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// Disable discards all further output and closes any log file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled = false
	level.Set(slog.LevelDebug)
}

func closeFile() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}

// IsEnabled reports whether output is currently written anywhere.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetLevel sets the minimum level that is written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { current().Error(msg, args...) }
