package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// ZapLogger implements types.Logger on top of a zap.SugaredLogger.
//
// Calls are forwarded to the sugared logger's *w methods, which take the same
// message plus key-value pairs convention as types.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap wraps an existing sugared logger.
//
// Example:
//
//	logger := NewZap(zap.NewExample().Sugar())
//	logger.Info("assignment computed", "shards", 4)
func NewZap(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

// NewZapProduction builds a JSON logger with zap's production encoding that
// writes to w at the given level.
//
// Parameters:
//   - w: Destination (typically os.Stderr)
//   - level: Level name accepted by zapcore.ParseLevel ("debug", "info", "warn", "error")
//
// Returns:
//   - *ZapLogger: Logger ready for use; call Sync before exit
//   - error: Level parse error
func NewZapProduction(w io.Writer, level string) (*ZapLogger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	sink := zapcore.AddSync(w)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, lvl)

	return NewZap(zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink)).Sugar()), nil
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.sugar.Fatalw(msg, keysAndValues...)
}
