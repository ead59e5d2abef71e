package handler

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// authResponse is returned by every registration and login endpoint.
type authResponse struct {
	User         *entity.User   `json:"user,omitempty"`
	Seller       *entity.Seller `json:"seller,omitempty"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

func optionalUUID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a UUID")
	}

	return &id, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339.
func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a date (YYYY-MM-DD)")
}

// callerID is the principal id the auth middleware stored on the context.
func callerID(c echo.Context) (uuid.UUID, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return claims.ID, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formFiles returns the files posted under field, at most limit of them.
func formFiles(c echo.Context, field string, limit int) ([]usecase.FileInput, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	headers := form.File[field]
	if len(headers) > limit {
		return nil, domainerrors.ErrTooManyFiles.WithDetails(field + " accepts at most " + strconv.Itoa(limit) + " files")
	}

	files := make([]usecase.FileInput, 0, len(headers))
	for _, fh := range headers {
		files = append(files, toFileInput(fh))
	}

	return files, nil
}

func toFileInput(fh *multipart.FileHeader) usecase.FileInput {
	return usecase.FileInput{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// formValue returns a pointer to the submitted value, or nil when the field was not sent.
func formValue(c echo.Context, field string) (*string, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed form")
	}

	values, ok := params[field]
	if !ok || len(values) == 0 {
		return nil, nil
	}

	return &values[0], nil
}
