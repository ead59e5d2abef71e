package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput adds Quantity of a product to the user's cart.
type AddToCartInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase manages cart lines. Every operation is scoped to the owning user.
type CartUsecase interface {
	AddItem(ctx context.Context, input *AddToCartInput) (*entity.CartItem, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, cartID uuid.UUID) error
}
