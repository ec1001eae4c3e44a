package datago

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with datago-specific context.
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

// WithDataset adds the dataset name to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// WithSplit adds the split name to the logger.
func (l *Logger) WithSplit(split string) *Logger {
	return &Logger{
		Logger: l.Logger.With("split", split),
	}
}

// LogFetch logs an archive fetch operation.
func (l *Logger) LogFetch(ctx context.Context, url, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"url", url,
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fetch completed",
			"url", url,
			"path", path,
		)
	}
}

// LogExtract logs an archive extraction.
func (l *Logger) LogExtract(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "extract failed",
			"archive", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "extract completed",
			"archive", path,
		)
	}
}

// LogIndex logs the construction of the sample index.
func (l *Logger) LogIndex(ctx context.Context, split string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "indexing failed",
			"split", split,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "indexing completed",
			"split", split,
			"samples", count,
		)
	}
}
