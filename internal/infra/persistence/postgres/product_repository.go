package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateProductError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", product.ID).
		Updates(map[string]any{
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"sku":            product.SKU,
			"stock_level":    product.StockLevel,
			"subcategory_id": product.SubcategoryID,
			"image_url":      datatypes.NewJSONSlice(nonNilStrings(product.ImageURLs)),
			"updated_at":     now,
		})
	if result.Error != nil {
		return translateProductError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Search pages through products whose name or description contains the term.
func (repo *productRepository) Search(ctx context.Context, query entity.ProductQuery) ([]*entity.Product, int64, error) {
	db := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if query.Term != "" {
		pattern := "%" + escapeLike(query.Term) + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}
	if total == 0 {
		return []*entity.Product{}, 0, nil
	}

	var rows []model.ProductModel
	if err := db.Order("created_at DESC").Offset(query.Offset).Limit(query.Limit).Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search products")
	}

	return toProductsDomain(rows), total, nil
}

func translateProductError(err error, msg string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrProductSKUTaken
	case isForeignKeyConstraintViolation(err):
		return repository.ErrProductReferenceBroken
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return errors.Wrapf(repository.ErrProductInvalid, "constraint %q", pgConstraintName(err))
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            data.ProductID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		SKU:           data.SKU,
		StockLevel:    data.StockLevel,
		SubcategoryID: data.SubcategoryID,
		CreatedBy:     data.CreatedBy,
		ImageURLs:     nonNilStrings(data.ImageURL),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductsDomain(rows []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ProductID:     data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		SKU:           data.SKU,
		StockLevel:    data.StockLevel,
		SubcategoryID: data.SubcategoryID,
		CreatedBy:     data.CreatedBy,
		ImageURL:      datatypes.NewJSONSlice(nonNilStrings(data.ImageURLs)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
