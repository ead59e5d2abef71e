package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// TokenUsecase exchanges a refresh token for a new token pair.
type TokenUsecase interface {
	// RotateTokens verifies refreshToken and mints a new pair from its claims.
	// The presented refresh token stays valid until its own expiry.
	RotateTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}
