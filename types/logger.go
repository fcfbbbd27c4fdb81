package types

// Logger defines methods for structured logging.
//
// Every method takes a message followed by alternating key-value pairs, the
// calling convention of slog.Logger and zap.SugaredLogger's *w methods.
// Adapters for both live in internal/logging.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and calls os.Exit(1).
	//
	// Test and no-op implementations may skip the exit.
	Fatal(msg string, keysAndValues ...any)
}
