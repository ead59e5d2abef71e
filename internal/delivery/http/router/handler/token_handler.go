package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Cookies *middleware.TokenCookies
	Logger  *slog.Logger
}

// TokenHandler serves refresh token rotation.
type TokenHandler struct {
	uc      usecase.TokenUsecase
	cookies *middleware.TokenCookies
	logger  *slog.Logger
}

func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		uc:      params.TokenUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// RefreshTokenRequest carries the refresh token when it is not sent as a cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken exchanges a refresh token (body, then cookie) for a new pair.
// The presented token is not revoked.
func (h *TokenHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("refreshToken must be a string")
	}

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		token = h.cookies.RefreshTokenFromCookie(c)
	}

	pair, err := h.uc.RotateTokens(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, pair)

	return response.Success(c, http.StatusOK, pair, "Token refreshed successfully")
}
