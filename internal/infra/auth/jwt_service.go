// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour

	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Observer is told about every issued and verified token. Implemented by metrics.
type Observer interface {
	TokenIssued(kind string)
	TokenVerified(kind string, ok bool)
}

type nopObserver struct{}

func (nopObserver) TokenIssued(string)         {}
func (nopObserver) TokenVerified(string, bool) {}

// Option configures the jwtService.
type Option func(*jwtService)

// WithObserver reports issuance and verification outcomes to o.
func WithObserver(o Observer) Option {
	return func(s *jwtService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithClock overrides time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// principalClaims is the signed payload: {id, email} plus iat and exp.
type principalClaims struct {
	PrincipalID string `json:"id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
	observer      Observer
}

// NewJWTService builds the token issuer and verifier. Missing or shared secrets
// are a configuration error and must stop the process from serving: the secret
// is the only thing telling an access token from a refresh token.
func NewJWTService(cfg *config.Config, opts ...Option) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("jwt access and refresh secrets must differ")
	}

	s := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		now:           time.Now,
		observer:      nopObserver{},
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			s.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// IssueAccessToken signs a short-lived token with the access secret.
func (s *jwtService) IssueAccessToken(principal entity.Principal) (string, error) {
	return s.issue(principal, s.accessSecret, s.accessTTL, KindAccess)
}

// IssueRefreshToken signs a long-lived token with the refresh secret.
func (s *jwtService) IssueRefreshToken(principal entity.Principal) (string, error) {
	return s.issue(principal, s.refreshSecret, s.refreshTTL, KindRefresh)
}

// IssueTokenPair returns both tokens or neither.
func (s *jwtService) IssueTokenPair(principal entity.Principal) (*entity.TokenPair, error) {
	accessToken, err := s.IssueAccessToken(principal)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefreshToken(principal)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken validates a token against the access secret.
func (s *jwtService) VerifyAccessToken(token string) (*entity.TokenClaims, error) {
	return s.verify(token, s.accessSecret, KindAccess)
}

// VerifyRefreshToken validates a token against the refresh secret.
func (s *jwtService) VerifyRefreshToken(token string) (*entity.TokenClaims, error) {
	return s.verify(token, s.refreshSecret, KindRefresh)
}

func (s *jwtService) issue(principal entity.Principal, secret []byte, ttl time.Duration, kind string) (string, error) {
	now := s.now()
	claims := principalClaims{
		PrincipalID: principal.ID.String(),
		Email:       principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign %s token", kind)
	}
	s.observer.TokenIssued(kind)

	return signed, nil
}

func (s *jwtService) verify(tokenString string, secret []byte, kind string) (*entity.TokenClaims, error) {
	claims, err := s.parse(tokenString, secret)
	s.observer.TokenVerified(kind, err == nil)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *jwtService) parse(tokenString string, secret []byte) (*entity.TokenClaims, error) {
	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token is not valid")
	}

	id, err := uuid.Parse(claims.PrincipalID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token carries a malformed principal id")
	}

	result := &entity.TokenClaims{ID: id, Email: claims.Email}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
