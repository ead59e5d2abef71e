package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryNameTaken      = errors.New("category name already exists")
	ErrSubcategoryNotFound    = errors.New("subcategory not found")
	ErrSubcategoryNameTaken   = errors.New("subcategory name already exists")
	ErrProductNotFound        = errors.New("product not found")
	ErrProductSKUTaken        = errors.New("product sku already exists")
	ErrProductReferenceBroken = errors.New("product references a missing subcategory or owner")
	ErrProductInvalid         = errors.New("product violates a column constraint")
)

// CategoryRepository persists categories and their subcategories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	ListSubcategories(ctx context.Context) ([]*entity.Subcategory, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Search matches the term case-insensitively against name and description and
	// returns one page plus the total number of matches.
	Search(ctx context.Context, query entity.ProductQuery) ([]*entity.Product, int64, error)
}
