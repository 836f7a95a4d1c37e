// Package logger provides the shared slog-based logger for mcpdeck.
// All operator-facing warnings (unreadable source configs, skipped manifest
// entries) flow through here so they end up on one stream.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu       sync.RWMutex
	levelVar = new(slog.LevelVar)
	root     = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))
)

// SetDebug toggles debug-level output. Info and above are always emitted.
func SetDebug(debug bool) {
	if debug {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// SetOutput replaces the root logger. Used in tests to capture or discard output.
func SetOutput(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
}

// Default returns the root logger.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(name string) *slog.Logger {
	return Default().With("component", name)
}

// Debug logs at debug level on the root logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs at info level on the root logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs at warn level on the root logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error logs at error level on the root logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }
