package middleware

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// TokenCookies writes issued token pairs as httpOnly, SameSite=Strict cookies
// when cookie delivery is enabled. Secure is set in production.
type TokenCookies struct {
	enabled    bool
	secure     bool
	domain     string
	path       string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenCookies builds the cookie writer from auth config.
func NewTokenCookies(cfg *config.Config) *TokenCookies {
	tc := &TokenCookies{secure: cfg.IsProduction(), path: "/"}
	if cfg.Auth != nil {
		tc.enabled = cfg.Auth.Cookies.Enabled
		tc.domain = cfg.Auth.Cookies.Domain
		if cfg.Auth.Cookies.Path != "" {
			tc.path = cfg.Auth.Cookies.Path
		}
		tc.accessTTL = cfg.Auth.AccessTokenTTL
		tc.refreshTTL = cfg.Auth.RefreshTokenTTL
	}

	return tc
}

// Write sets both cookies. It is a no-op when cookie delivery is disabled.
func (tc *TokenCookies) Write(c echo.Context, pair *entity.TokenPair) {
	if !tc.enabled || pair == nil {
		return
	}

	c.SetCookie(tc.cookie(AccessTokenCookie, pair.AccessToken, tc.accessTTL))
	c.SetCookie(tc.cookie(RefreshTokenCookie, pair.RefreshToken, tc.refreshTTL))
}

// RefreshTokenFromCookie returns the refresh token cookie value, if any.
func (tc *TokenCookies) RefreshTokenFromCookie(c echo.Context) string {
	return cookieValue(c, RefreshTokenCookie)
}

func (tc *TokenCookies) cookie(name, value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     tc.path,
		Domain:   tc.domain,
		HttpOnly: true,
		Secure:   tc.secure,
		SameSite: http.SameSiteStrictMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}
