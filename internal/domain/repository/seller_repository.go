package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrSellerNotFound   = errors.New("seller not found")
	ErrSellerEmailTaken = errors.New("seller email already exists")
)

// SellerRepository persists sellers.
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
}
