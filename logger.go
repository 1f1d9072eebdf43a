package multivec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with multivec-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds an element-count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithDim adds a vector-dimension field to the logger.
func (l *Logger) WithDim(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogResize logs a container (re)initialization.
func (l *Logger) LogResize(count, dim int) {
	l.Debug("resize completed",
		"count", count,
		"dimension", dim,
	)
}

// LogGram logs a batched inner-product computation.
func (l *Logger) LogGram(rows, cols, workers int) {
	l.Debug("gram computed",
		"rows", rows,
		"cols", cols,
		"workers", workers,
	)
}

// LogOrthogonalize logs an in-place orthogonalization.
// rank is the number of non-degenerate basis vectors retained.
func (l *Logger) LogOrthogonalize(count, rank int) {
	if rank < count {
		l.Warn("orthogonalize found dependent elements",
			"count", count,
			"rank", rank,
		)
	} else {
		l.Debug("orthogonalize completed",
			"count", count,
		)
	}
}
