package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu           sync.Mutex
	logger       = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile      *os.File
	traceEnabled bool
)

// Configure directs log output to path. An empty path keeps logging
// disabled: the terminal belongs to the UI while the browser runs, so there
// is no console fallback. Missing parent directories are created.
func Configure(path string, trace bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	traceEnabled = trace

	if strings.TrimSpace(path) == "" {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}
	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close flushes and releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	return err
}

// Error records err. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error(err.Error())
}

// Info records a lifecycle message.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Trace records a debug event when tracing is enabled.
func Trace(event string, args ...any) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	l.Log(context.Background(), slog.LevelDebug, event, args...)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
