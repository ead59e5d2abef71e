package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
		wantBiz   string
	}{
		{
			name:      "app error",
			err:       domainerrors.ErrUserAlreadyExists,
			wantCode:  http.StatusConflict,
			wantError: "user with this email already exists",
			wantBiz:   "USER_ALREADY_EXISTS",
		},
		{
			name:      "wrapped app error",
			err:       errors.Wrap(domainerrors.ErrTokenInvalid, "token is expired"),
			wantCode:  http.StatusForbidden,
			wantError: "invalid or expired token",
			wantBiz:   "TOKEN_INVALID",
		},
		{
			name:      "echo error",
			err:       echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantCode:  http.StatusMethodNotAllowed,
			wantError: "method not allowed",
			wantBiz:   "HTTP_ERROR",
		},
		{
			name:      "unknown error is hidden",
			err:       errors.New("pq: connection refused to 10.0.0.1"),
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
			wantBiz:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantError, body.Message)
			assert.Equal(t, tt.wantBiz, body.ErrorCode)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestHandleHTTPError_SkipsCommittedResponses(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	mw.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
