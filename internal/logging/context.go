package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	childCtx := FromContext(ctx).With()
	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}
	return WithContext(ctx, childCtx.Logger())
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithOrigin tags log lines with the page origin being styled.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return withStr(ctx, "origin", origin)
}

// WithProvider tags log lines with the external provider name.
func WithProvider(ctx context.Context, provider string) context.Context {
	return withStr(ctx, "provider", provider)
}

// WithRequestID tags log lines with an outbound request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withStr(ctx, "request_id", id)
}

func withStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, logger)
}
