// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/bundle/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
// Informational messages go to stdout; warnings and errors go to stderr.
type Logger struct {
	mu     sync.RWMutex
	out    *slog.Logger
	errOut *slog.Logger
}

// New creates a Logger writing to os.Stdout and os.Stderr.
func New() *Logger {
	l := &Logger{}
	l.SetOutputs(os.Stdout, os.Stderr)
	return l
}

// SetOutputs updates the logger's output destinations.
// A nil writer keeps the matching standard stream.
func (l *Logger) SetOutputs(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = slog.New(NewPrettyHandler(stdout, opts))
	l.errOut = slog.New(NewPrettyHandler(stderr, opts))
}

// SetOutput sends every message to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.SetOutputs(w, w)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.out.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.errOut.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	msg := formatErrorEntries(collectErrorEntries(err))

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.errOut.Error(msg)
}
