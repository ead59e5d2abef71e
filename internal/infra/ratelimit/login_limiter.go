// Package ratelimit implements the failed-login attempt limiter.
package ratelimit

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "login_attempts:"

// Params defines the required parameters
type Params struct {
	fx.In

	Client  *goredis.Client  `optional:"true"`
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
}

type throttleRecorder interface {
	LoginThrottled()
}

// redisLoginLimiter is a fixed window counter per key: the first failure starts the window.
type redisLoginLimiter struct {
	client   *goredis.Client
	max      int64
	window   time.Duration
	recorder throttleRecorder
}

// New returns a Redis backed limiter, or a limiter that always allows when Redis is not configured.
func New(params Params) service.LoginLimiter {
	if params.Client == nil {
		return noopLimiter{}
	}

	maxAttempts, window := 5, 15*time.Minute
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.LoginAttempts.Max > 0 {
			maxAttempts = params.Config.Auth.LoginAttempts.Max
		}
		if params.Config.Auth.LoginAttempts.Window > 0 {
			window = params.Config.Auth.LoginAttempts.Window
		}
	}

	limiter := &redisLoginLimiter{
		client: params.Client,
		max:    int64(maxAttempts),
		window: window,
	}
	if params.Metrics != nil {
		limiter.recorder = params.Metrics
	}

	return limiter
}

func (l *redisLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Get(ctx, keyPrefix+key).Int64()
	if errors.Is(err, goredis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read login attempts")
	}

	if count >= l.max {
		if l.recorder != nil {
			l.recorder.LoginThrottled()
		}

		return false, nil
	}

	return true, nil
}

func (l *redisLoginLimiter) Fail(ctx context.Context, key string) error {
	count, err := l.client.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return errors.Wrap(err, "failed to record login attempt")
	}

	if count == 1 {
		if err := l.client.Expire(ctx, keyPrefix+key, l.window).Err(); err != nil {
			return errors.Wrap(err, "failed to set login attempt window")
		}
	}

	return nil
}

func (l *redisLoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset login attempts")
	}

	return nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopLimiter) Fail(context.Context, string) error          { return nil }
func (noopLimiter) Reset(context.Context, string) error         { return nil }
