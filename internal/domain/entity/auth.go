package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the identity snapshot a token pair is minted from.
// Both users and sellers authenticate as a Principal.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// TokenClaims is the decoded, verified payload of an access or refresh token.
type TokenClaims struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// Principal returns the identity carried by the claims.
func (c *TokenClaims) Principal() Principal {
	return Principal{ID: c.ID, Email: c.Email}
}

// TokenPair is what every successful login, registration and rotation returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
