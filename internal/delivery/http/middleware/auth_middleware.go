package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware gates protected routes on a valid access token. It only checks
// signature and expiry; it never reads the database.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate reads the access token from the Authorization header or the
// access token cookie. Missing -> 401, invalid or expired -> 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := AccessTokenFromRequest(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.verifier.VerifyAccessToken(token)
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "access token rejected")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireSelf rejects requests whose path parameter does not name the caller.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !strings.EqualFold(c.Param(param), claims.ID.String()) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// AccessTokenFromRequest returns the bearer token, falling back to the cookie.
func AccessTokenFromRequest(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); len(header) > len(bearerPrefix) &&
		strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		if token := strings.TrimSpace(header[len(bearerPrefix):]); token != "" {
			return token
		}
	}

	return cookieValue(c, AccessTokenCookie)
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(cookie.Value)
}
