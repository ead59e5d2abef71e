package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository persists the addresses owned by users.
type AddressRepository interface {
	// FindByUser returns every address of the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// ReplaceForUser deletes the user's addresses and inserts the given ones.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, addresses []*entity.Address) error

	// DeleteByUser removes all addresses of the user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
