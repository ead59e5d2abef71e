package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartItemConflict = errors.New("cart line id already exists")
)

// CartRepository persists cart lines.
type CartRepository interface {
	// FindItem returns the line for (userID, productID).
	FindItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// FindByID returns the line with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// Create inserts a new line.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// ListByUser returns the user's lines joined with product details.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
