package service

import (
	"storefront/internal/domain/entity"
)

// TokenIssuer mints signed, time-bounded credentials for a principal.
// Issuing never touches storage and only fails on misconfiguration.
type TokenIssuer interface {
	IssueAccessToken(principal entity.Principal) (string, error)
	IssueRefreshToken(principal entity.Principal) (string, error)
	IssueTokenPair(principal entity.Principal) (*entity.TokenPair, error)
}

// TokenVerifier checks signature and expiry and returns the embedded claims.
// Any failure is reported as domain errors.ErrTokenInvalid.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*entity.TokenClaims, error)
	VerifyRefreshToken(token string) (*entity.TokenClaims, error)
}

// TokenService is the full token lifecycle.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
