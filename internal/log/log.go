// ABOUTME: Structured logging for the demo REPL via slog.
// ABOUTME: Writes to stderr so output never interleaves with the TUI; level is adjustable.

package log

import (
	"log/slog"
	"os"
)

var levelVar = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: levelVar,
}))

// SetVerbose switches the global level to debug.
func SetVerbose(verbose bool) {
	if verbose {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { logger.Error(msg, args...) }
