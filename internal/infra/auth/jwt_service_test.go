package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test_access_secret_key_very_long_for_testing"
	testRefreshSecret = "test_refresh_secret_key_very_long_for_testing"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

type countingObserver struct {
	issued   map[string]int
	verified map[string]int
	rejected map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{issued: map[string]int{}, verified: map[string]int{}, rejected: map[string]int{}}
}

func (o *countingObserver) TokenIssued(kind string) { o.issued[kind]++ }

func (o *countingObserver) TokenVerified(kind string, ok bool) {
	if ok {
		o.verified[kind]++
	} else {
		o.rejected[kind]++
	}
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret))
	require.NoError(t, err)

	principal := entity.Principal{ID: uuid.New(), Email: "a@x.com"}

	pair, err := svc.IssueTokenPair(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, principal, accessClaims.Principal())

	refreshClaims, err := svc.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, principal, refreshClaims.Principal())
}

func TestJWTService_SecretsAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret))
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair(entity.Principal{ID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = svc.VerifyRefreshToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredTokenIsRejected(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret), WithClock(func() time.Time { return clock }))
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(entity.Principal{ID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	clock = issuedAt.Add(14 * time.Minute)
	_, err = svc.VerifyAccessToken(token)
	require.NoError(t, err)

	clock = issuedAt.Add(16 * time.Minute)
	_, err = svc.VerifyAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsForeignSignatures(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("another_access_secret", "another_refresh_secret"))
	require.NoError(t, err)

	token, err := other.IssueAccessToken(entity.Principal{ID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsMalformedTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "a@x.com",
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	badID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "not-a-uuid",
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":    "clearly-not-a-jwt-token-format",
		"empty":      "",
		"alg none":   noneToken,
		"no expiry":  noExpiry,
		"bad src id": badID,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.VerifyAccessToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}

func TestJWTService_EmptySecrets(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
	}{
		{name: "both missing"},
		{name: "access missing", refresh: testRefreshSecret},
		{name: "refresh missing", access: testAccessSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(newTestConfig(tt.access, tt.refresh))
			assert.Nil(t, svc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "jwt secrets must be provided")
		})
	}

	t.Run("shared secret", func(t *testing.T) {
		svc, err := NewJWTService(newTestConfig("same", "same"))
		assert.Nil(t, svc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})
}

func TestJWTService_TokensIssuedInTheSameSecondDiffer(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret), WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	principal := entity.Principal{ID: uuid.New(), Email: "a@x.com"}
	first, err := svc.IssueRefreshToken(principal)
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken(principal)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_UsesConfiguredLifetimes(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := newTestConfig(testAccessSecret, testRefreshSecret)
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 20 * time.Minute}

	svc, err := NewJWTService(cfg, WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair(entity.Principal{ID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	access, err := svc.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, now.Add(20*time.Minute), access.ExpiresAt.UTC())

	refresh, err := svc.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*24*time.Hour), refresh.ExpiresAt.UTC())
}

func TestJWTService_ReportsToObserver(t *testing.T) {
	obs := newCountingObserver()
	svc, err := NewJWTService(newTestConfig(testAccessSecret, testRefreshSecret), WithObserver(obs))
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair(entity.Principal{ID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	_, _ = svc.VerifyAccessToken(pair.AccessToken)
	_, _ = svc.VerifyAccessToken("garbage")

	assert.Equal(t, 1, obs.issued[KindAccess])
	assert.Equal(t, 1, obs.issued[KindRefresh])
	assert.Equal(t, 1, obs.verified[KindAccess])
	assert.Equal(t, 1, obs.rejected[KindAccess])
}
