package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// bcrypt only reads the first 72 bytes of its input and refuses longer ones.
const maxBcryptInput = 72

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "123456", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The configured pepper is appended to every password before hashing and checking.
type bcryptHasher struct {
	cost     int
	pepper   string
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and password strength config.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost, strength: cfg.PasswordStrength}
	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			h.cost = cfg.Auth.BcryptCost
		}
		h.pepper = cfg.Auth.PasswordPepper
	}

	return h
}

// Hash generates a salted hash of password+pepper. Input bcrypt cannot take is
// the caller's fault and reported as a strength error.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if limit := maxBcryptInput - len(h.pepper); len(password) > limit {
		return "", domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes", limit))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(hash), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper)) == nil
}

// ValidatePasswordStrength applies the configured policy. Without a policy every password passes.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength
	if policy == nil {
		return nil
	}

	length := len([]rune(password))
	switch {
	case policy.MinLength > 0 && length < policy.MinLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	case policy.MaxLength > 0 && length > policy.MaxLength:
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	case policy.RequireUppercase && !containsRune(password, unicode.IsUpper):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter")
	case policy.RequireLowercase && !containsRune(password, unicode.IsLower):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a lowercase letter")
	case policy.RequireNumbers && !containsRune(password, unicode.IsDigit):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a number")
	case policy.RequireSpecial && !containsRune(password, isSpecial):
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a special character")
	}

	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func containsRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
