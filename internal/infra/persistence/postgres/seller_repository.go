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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	if seller.ID == uuid.Nil {
		seller.ID = uuid.New()
	}
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSellerEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Clauses(dbresolver.Write), "email = ?", email)
}

func (repo *sellerRepository) findOne(_ context.Context, db *gorm.DB, cond string, arg any) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := db.Where(cond, arg).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller")
	}

	return toSellerDomain(&sellerM), nil
}

func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Updates(map[string]any{
			"name":          seller.Name,
			"email":         seller.Email,
			"password_hash": seller.PasswordHash,
			"phone_number":  seller.PhoneNumber,
			"company_name":  seller.CompanyName,
			"gst_number":    seller.GSTNumber,
			"bank_details":  seller.BankDetails,
			"company_logos": datatypes.NewJSONSlice(nonNilStrings(seller.CompanyLogos)),
			"updated_at":    now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSellerEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	seller.UpdatedAt = now

	return nil
}

func (repo *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SellerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	return &entity.Seller{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		CompanyName:  data.CompanyName,
		GSTNumber:    data.GSTNumber,
		BankDetails:  data.BankDetails,
		CompanyLogos: nonNilStrings(data.CompanyLogos),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	return &model.SellerModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		CompanyName:  data.CompanyName,
		GSTNumber:    data.GSTNumber,
		BankDetails:  data.BankDetails,
		CompanyLogos: datatypes.NewJSONSlice(nonNilStrings(data.CompanyLogos)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// nonNilStrings keeps JSON columns as [] rather than null.
func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
