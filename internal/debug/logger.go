// Package debug provides opt-in debug logging using log/slog.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// logger discards everything until Init enables it.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	// enabled indicates if debug logging is enabled
	enabled bool
	// mu protects the logger and enabled flag
	mu sync.RWMutex
)

// Init initializes the debug logger.
// If enable is true, debug logs will be written to os.Stderr.
// If enable is false, debug logs will be silently discarded.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable

	if enable {
		opts := &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug(msg, args...)
}
