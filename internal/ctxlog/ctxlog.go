// Package ctxlog passes a slog.Logger through context.Context so library
// code can log without owning a logger field.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entries collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx. Contexts that were never
// seeded fall back to slog.Default; callers outside this module cannot be
// required to use WithLogger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
