// Package context carries per-request values from the delivery layer into the usecases:
// the request ID that ties an API call to the syncs it triggers, and a logger scoped to it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

const (
	// HeaderXRequestID is read from incoming requests and echoed on every response.
	HeaderXRequestID = "X-Request-Id"

	// LogKeyRequestID is the attribute name for the request ID in log lines and Pub/Sub attributes.
	LogKeyRequestID = "request_id"
)

// WithRequest stores the request ID together with a logger that already carries it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, logger.With(slog.String(LogKeyRequestID, requestID)))
}

// BindRequest attaches the request ID to both the echo context and the request context,
// and sets the response header.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(LogKeyRequestID, requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)
	c.SetRequest(c.Request().WithContext(WithRequest(c.Request().Context(), requestID, logger)))
}

// RequestID returns the stored request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogAttrs narrows the request logger, e.g. with the authenticated user or a sync target.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...any) context.Context {
	return context.WithValue(ctx, loggerKey, GetLoggerOrDefault(ctx, fallback).With(attrs...))
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
