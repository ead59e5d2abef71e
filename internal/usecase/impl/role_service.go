package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type roleService struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

func NewRoleService(roleRepo repository.RoleRepository, logger *slog.Logger) usecase.RoleUsecase {
	return &roleService{roleRepo: roleRepo, logger: logger}
}

func (srv *roleService) CreateRole(ctx context.Context, name string) (*entity.Role, error) {
	role := &entity.Role{Name: strings.TrimSpace(name)}
	if err := srv.roleRepo.Create(ctx, role); err != nil {
		return nil, mapRoleRepoError(err, "failed to create role")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Role created", slog.Any("roleID", role.ID), slog.String("name", role.Name))

	return role, nil
}

func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleService) GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRoleRepoError(err, "failed to find role")
	}

	return role, nil
}

func (srv *roleService) RenameRole(ctx context.Context, id uuid.UUID, name string) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRoleRepoError(err, "failed to find role")
	}

	role.Name = strings.TrimSpace(name)
	if err := srv.roleRepo.Update(ctx, role); err != nil {
		return nil, mapRoleRepoError(err, "failed to update role")
	}

	return role, nil
}

func (srv *roleService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	if err := srv.roleRepo.Delete(ctx, id); err != nil {
		return mapRoleRepoError(err, "failed to delete role")
	}

	return nil
}

func mapRoleRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrRoleNotFound):
		return errors.Wrap(domainerrors.ErrRoleNotFound, msg)
	case errors.Is(err, repository.ErrRoleNameTaken):
		return errors.Wrap(domainerrors.ErrRoleAlreadyExists, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
