package algokit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with algokit-specific helpers so batch
// operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))}
}

// LogSort logs the outcome of a sort call.
func (l *Logger) LogSort(ctx context.Context, typeID, algorithmID string, count, status int) {
	if status < 0 {
		l.ErrorContext(ctx, "sort failed",
			"type", typeID,
			"algorithm", algorithmID,
			"count", count,
			"status", status,
		)
	} else {
		l.DebugContext(ctx, "sort completed",
			"type", typeID,
			"algorithm", algorithmID,
			"count", count,
		)
	}
}

// LogSearch logs the outcome of a search call.
func (l *Logger) LogSearch(ctx context.Context, typeID, algorithmID string, count, result int) {
	if result < SearchNotFound {
		l.ErrorContext(ctx, "search failed",
			"type", typeID,
			"algorithm", algorithmID,
			"count", count,
			"status", result,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"type", typeID,
			"algorithm", algorithmID,
			"count", count,
			"result", result,
		)
	}
}

// LogShuffle logs the outcome of a shuffle call.
func (l *Logger) LogShuffle(ctx context.Context, typeID, algorithmID, modeID string, count, status int) {
	if status < 0 {
		l.ErrorContext(ctx, "shuffle failed",
			"type", typeID,
			"algorithm", algorithmID,
			"mode", modeID,
			"count", count,
			"status", status,
		)
	} else {
		l.DebugContext(ctx, "shuffle completed",
			"type", typeID,
			"algorithm", algorithmID,
			"mode", modeID,
			"count", count,
		)
	}
}
