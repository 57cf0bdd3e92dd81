// Package context carries the request ID, caller and scoped logger of an
// HTTP request, push delivery, job or scheduler cycle.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	keyRequestID scopeKey = iota
	keyLogger
	keyUserID
)

// echo.Context key holding the request ID for response envelopes.
const echoKeyRequestID = "request_id"

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// NewScope stores requestID and a logger derived from base in ctx.
func NewScope(ctx context.Context, base *slog.Logger, requestID string, attrs ...any) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	ctx = WithRequestID(ctx, requestID)
	ctx = WithLogger(ctx, logger)

	return ctx, logger
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the scoped logger, or fallback outside a scope.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithUserID records the authenticated caller and tags the scoped logger with it.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, keyUserID, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}

	return ctx
}

// GetUserIDFromContext returns the authenticated caller, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(keyUserID).(uuid.UUID)

	return userID, ok
}
