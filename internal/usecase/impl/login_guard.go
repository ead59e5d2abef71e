package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/util"
)

// loginGuard wraps the attempt limiter. Limiter outages never block a login.
type loginGuard struct {
	limiter service.LoginLimiter
	window  time.Duration
}

func (g loginGuard) check(ctx context.Context, logger *slog.Logger, key string) error {
	if g.limiter == nil {
		return nil
	}

	allowed, err := g.limiter.Allow(ctx, key)
	if err != nil {
		logger.Warn("Login limiter unavailable", slog.String("key", key), slog.Any("error", err))

		return nil
	}
	if !allowed {
		if g.window > 0 {
			return domainerrors.ErrTooManyLoginAttempts.WithDetails("retry in " + util.FormatDuration(g.window))
		}

		return domainerrors.ErrTooManyLoginAttempts
	}

	return nil
}

func (g loginGuard) fail(ctx context.Context, logger *slog.Logger, key string) {
	if g.limiter == nil {
		return
	}
	if err := g.limiter.Fail(ctx, key); err != nil {
		logger.Warn("Failed to record login failure", slog.String("key", key), slog.Any("error", err))
	}
}

func (g loginGuard) reset(ctx context.Context, logger *slog.Logger, key string) {
	if g.limiter == nil {
		return
	}
	if err := g.limiter.Reset(ctx, key); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("key", key), slog.Any("error", err))
	}
}
