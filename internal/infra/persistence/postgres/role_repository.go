package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	roleM := &model.RoleModel{ID: role.ID, RoleName: role.Name}

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var rows []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("role_name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(rows))
	for i := range rows {
		roles = append(roles, toRoleDomain(&rows[i]))
	}

	return roles, nil
}

func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Updates(map[string]any{"role_name": role.Name, "updated_at": now})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	role.UpdatedAt = now

	return nil
}

func (repo *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RoleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:        data.ID,
		Name:      data.RoleName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
