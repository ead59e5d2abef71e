package service

import "context"

// LoginLimiter throttles repeated failed logins for the same account key.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted for key.
	Allow(ctx context.Context, key string) (bool, error)
	// Fail records a failed attempt.
	Fail(ctx context.Context, key string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, key string) error
}
