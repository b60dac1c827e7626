package eventstore

// Logger interface for operational logging, warnings, and error reporting.
// Arguments follow the slog convention of alternating keys and values.
// Both the Store and the storage engines treat a nil logger as "log nothing",
// so wiring one up is always optional.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
