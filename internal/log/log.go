// ABOUTME: Debug logging for the runtime, wrapping slog levels
// ABOUTME: Output goes to a file, never the terminal the UI is drawing on

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = io.Discard
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. The default discards everything; while
// a program owns the terminal, stdout and stderr are not safe to write.
// Passing nil restores the discarding default.
func SetOutput(w io.Writer) {
	outMu.Lock()
	if w == nil {
		w = io.Discard
	}
	out = w
	outMu.Unlock()
}

// ToFile opens (or creates) path for appending and sends log output
// there. The caller closes the returned file after the UI exits.
func ToFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return f, nil
}

func logf(prefix, format string, args ...any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if GetLevel() > LevelDebug {
		return
	}
	logf("[DEBUG] ", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if GetLevel() > LevelInfo {
		return
	}
	logf("[INFO] ", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if GetLevel() > LevelWarn {
		return
	}
	logf("[WARN] ", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	logf("[ERROR] ", format, args...)
}
