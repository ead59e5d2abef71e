package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var rows []model.AddressModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(rows))
	for i := range rows {
		addresses = append(addresses, toAddressDomain(&rows[i]))
	}

	return addresses, nil
}

// ReplaceForUser should run inside a transaction; it is not atomic on its own.
func (repo *addressRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, addresses []*entity.Address) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.AddressModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete addresses")
	}
	if len(addresses) == 0 {
		return nil
	}

	rows := make([]*model.AddressModel, 0, len(addresses))
	for _, addr := range addresses {
		if addr.ID == uuid.Nil {
			addr.ID = uuid.New()
		}
		addr.UserID = userID
		rows = append(rows, fromAddressDomain(addr))
	}

	if err := db.Create(rows).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert addresses")
	}

	for i, row := range rows {
		addresses[i].CreatedAt = row.CreatedAt
		addresses[i].UpdatedAt = row.UpdatedAt
	}

	return nil
}

func (repo *addressRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.AddressModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete addresses")
	}

	return nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
