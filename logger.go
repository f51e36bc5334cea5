package vecscore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecscore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogScore logs a fan-out scoring operation. windows is the number of
// counter windows merged from the workers.
func (l *Logger) LogScore(ctx context.Context, points int, cpuUnits uint64, windows int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scoring failed",
			"points", points,
			"cpu_units", cpuUnits,
			"windows", windows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scoring completed",
			"points", points,
			"cpu_units", cpuUnits,
			"windows", windows,
		)
	}
}

// LogBudgetExhausted logs a scoring worker that stopped on its CPU budget.
func (l *Logger) LogBudgetExhausted(ctx context.Context, scored, assigned int, cpuUnits uint64) {
	l.WarnContext(ctx, "scoring budget exhausted",
		"scored", scored,
		"assigned", assigned,
		"cpu_units", cpuUnits,
	)
}
