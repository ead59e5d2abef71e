package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageUsecase stores standalone uploaded images.
type ImageUsecase interface {
	Upload(ctx context.Context, file FileInput) (*entity.Image, error)
	List(ctx context.Context) ([]*entity.Image, error)
}
