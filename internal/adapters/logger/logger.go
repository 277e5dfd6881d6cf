// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing human readable records to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{logger: slog.New(newHandler(w))}
}

func newHandler(w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a degraded but recoverable condition.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs a failure together with any metadata attached through zerr.With.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", errorAttrs(err)...)
}

func errorAttrs(err error) []any {
	attrs := []any{"error", err}

	meta := make(map[string]any)
	collectMetadata(err, meta)

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, meta[k])
	}
	return attrs
}

// collectMetadata gathers zerr metadata from the whole error tree. Outer values win.
func collectMetadata(err error, meta map[string]any) {
	if err == nil {
		return
	}
	if zErr, ok := err.(*zerr.Error); ok { //nolint:errorlint // walking the tree by hand
		for k, v := range zErr.Metadata() {
			if _, seen := meta[k]; !seen {
				meta[k] = v
			}
		}
	}
	switch u := err.(type) { //nolint:errorlint // walking the tree by hand
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			collectMetadata(e, meta)
		}
	case interface{ Unwrap() error }:
		collectMetadata(u.Unwrap(), meta)
	}
}
