package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageField = "image"

type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler serves /api/images.
type ImageHandler struct {
	uc     usecase.ImageUsecase
	logger *slog.Logger
}

func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{uc: params.ImageUC, logger: params.Logger}
}

// Upload stores the multipart "image" file.
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile(imageField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}

	image, err := h.uc.Upload(c.Request().Context(), toFileInput(fh))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Image uploaded successfully")
}

func (h *ImageHandler) ListImages(c echo.Context) error {
	images, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images, "Images retrieved successfully")
}
