package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageRepository persists metadata of uploaded images.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	List(ctx context.Context) ([]*entity.Image, error)
}
