// Package context carries request-scoped values (request id, logger, token claims)
// on both echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keyClaims    key = "claims"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the logger stored by WithLogger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetClaims stores verified claims on both the echo context and its request context,
// so handlers and usecases see the same caller.
func SetClaims(c echo.Context, claims *entity.TokenClaims) {
	c.Set(string(keyClaims), claims)
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), keyClaims, claims)))
}

// GetClaims returns the claims attached by the authentication middleware.
func GetClaims(c echo.Context) (*entity.TokenClaims, bool) {
	claims, ok := c.Get(string(keyClaims)).(*entity.TokenClaims)

	return claims, ok && claims != nil
}

// ClaimsFromContext is GetClaims for code that only holds a context.Context.
func ClaimsFromContext(ctx context.Context) (*entity.TokenClaims, bool) {
	claims, ok := ctx.Value(keyClaims).(*entity.TokenClaims)

	return claims, ok && claims != nil
}
