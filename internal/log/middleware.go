package log

import (
	"context"
)

type contextKey string

const loggerKey contextKey = "logger"

// WithContext stores the logger in the context.
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to a
// default logger when none was attached.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
		return logger
	}
	return New(DefaultConfig())
}
