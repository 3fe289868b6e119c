// Package logger writes debug logs to a file. The terminal belongs to the
// TUI, so nothing is ever logged to stdout or stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	slogLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
)

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens the log file at path and tags every record with a fresh
// session id. Calling Init again replaces the previous file.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar})
	slogLogger = slog.New(handler).With("session", uuid.NewString())
	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

// Get returns the process logger. Before Init it discards everything.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return slogLogger
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}
