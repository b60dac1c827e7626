package logadapters

import (
	"io"
	"log/slog"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// SlogLogger implements eventstore.Logger on top of Go's standard log/slog
// package. Since the Logger interface already follows the slog argument
// convention, the adapter is a plain passthrough.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a new logger adapter around an existing slog.Logger.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewTextLogger creates a logger adapter writing human-readable lines to w
// at the given minimum level.
func NewTextLogger(w io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Ensure SlogLogger implements eventstore.Logger.
var _ eventstore.Logger = (*SlogLogger)(nil)
