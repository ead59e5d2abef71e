package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase manages roles.
type RoleUsecase interface {
	CreateRole(ctx context.Context, name string) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	RenameRole(ctx context.Context, id uuid.UUID, name string) (*entity.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}
