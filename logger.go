package neodb

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with neodb-specific context.
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

// LogLink logs the outcome of linking approaches to NEOs.
func (l *Logger) LogLink(objects, approaches, unresolved int) {
	if unresolved > 0 {
		l.Warn("catalog linked with unresolved approaches",
			"objects", objects,
			"approaches", approaches,
			"unresolved", unresolved,
		)
	} else {
		l.Info("catalog linked",
			"objects", objects,
			"approaches", approaches,
		)
	}
}

// LogLookup logs a key lookup.
func (l *Logger) LogLookup(kind, key string, found bool) {
	l.Debug("lookup completed",
		"kind", kind,
		"key", key,
		"found", found,
	)
}

// LogQuery logs a query operation.
func (l *Logger) LogQuery(filters, results int) {
	l.Debug("query completed",
		"filters", filters,
		"results", results,
	)
}

// LogLoad logs a parsed dataset file.
func (l *Logger) LogLoad(file string, records int) {
	l.Info("dataset loaded",
		"file", file,
		"records", records,
	)
}
