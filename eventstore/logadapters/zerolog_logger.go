package logadapters

import (
	"github.com/rs/zerolog"

	"github.com/eventdeck/campus-events-store-go/eventstore"
)

// ZerologLogger implements eventstore.Logger on top of rs/zerolog.
// The slog-style alternating key/value arguments are converted to zerolog
// fields; a key that is not a string is skipped together with its value.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a new logger adapter around an existing
// zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a debug message.
func (l *ZerologLogger) Debug(msg string, args ...any) {
	l.emit(l.logger.Debug(), msg, args...)
}

// Info logs an info message.
func (l *ZerologLogger) Info(msg string, args ...any) {
	l.emit(l.logger.Info(), msg, args...)
}

// Warn logs a warning message.
func (l *ZerologLogger) Warn(msg string, args ...any) {
	l.emit(l.logger.Warn(), msg, args...)
}

// Error logs an error message.
func (l *ZerologLogger) Error(msg string, args ...any) {
	l.emit(l.logger.Error(), msg, args...)
}

func (l *ZerologLogger) emit(event *zerolog.Event, msg string, args ...any) {
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			event = event.Interface(key, args[i+1])
		}
	}

	event.Msg(msg)
}

// Ensure ZerologLogger implements eventstore.Logger.
var _ eventstore.Logger = (*ZerologLogger)(nil)
