package auth

import (
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig(cost int, pepper string, strength *config.PasswordStrengthConfig) *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: cost, PasswordPepper: pepper},
		PasswordStrength: strength,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, "", nil))

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)

	assert.True(t, hasher.Check("pw", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("pw", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(6, "", nil))

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(99, "", nil)).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_PepperIsPartOfTheHash(t *testing.T) {
	peppered := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, "server-pepper", nil))
	plain := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, "", nil))

	hash, err := peppered.Hash("secret")
	require.NoError(t, err)

	assert.True(t, peppered.Check("secret", hash))
	assert.False(t, plain.Check("secret", hash))
	assert.True(t, plain.Check("secretserver-pepper", hash))
}

func TestBcryptHasher_NoPolicyAcceptsAnything(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, "", nil))

	assert.NoError(t, hasher.ValidatePasswordStrength("pw"))
	assert.NoError(t, hasher.ValidatePasswordStrength("password"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, "", &config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}))

	for _, valid := range []string{"StrongPass123!", "MySecure@Pass1", "Pässphräse123!"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(valid), valid)
	}

	tests := []struct {
		password string
		want     error
	}{
		{"Ab1!", domainerrors.ErrPasswordStrength},
		{"PASSWORD123!", domainerrors.ErrPasswordStrength},
		{"lowercase123!", domainerrors.ErrPasswordStrength},
		{"NoNumbers!!", domainerrors.ErrPasswordStrength},
		{"NoSpecial123", domainerrors.ErrPasswordStrength},
		{"MyPassword123!", domainerrors.ErrPasswordForbiddenWords},
		{"SuperAdmin123!", domainerrors.ErrPasswordForbiddenWords},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestBcryptHasher_RejectsInputBeyondBcryptLimit(t *testing.T) {
	tests := []struct {
		name     string
		pepper   string
		password string
		wantErr  bool
	}{
		{name: "72 bytes", password: strings.Repeat("a", 72)},
		{name: "73 bytes", password: strings.Repeat("a", 73), wantErr: true},
		{name: "pepper counts", pepper: "pep", password: strings.Repeat("a", 70), wantErr: true},
		{name: "multibyte runes", password: strings.Repeat("é", 40), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost, tt.pepper, nil))

			_, err := hasher.Hash(tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			appErr, ok := err.(domainerrors.AppError)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Contains(t, appErr.Details(), "at most")
		})
	}
}
