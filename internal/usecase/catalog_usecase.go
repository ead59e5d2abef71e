package usecase

import (
	"context"
	"math"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// MaxProductImages is the most image files accepted per product request.
	MaxProductImages = 5

	DefaultSearchPage  = 1
	DefaultSearchLimit = 8
	MaxSearchLimit     = 100
	// MaxSearchOffset bounds (page-1)*limit; larger pages are clamped.
	MaxSearchOffset = math.MaxInt32
)

// CategoryUsecase manages the product taxonomy.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateSubcategory(ctx context.Context, name string, categoryID uuid.UUID) (*entity.Subcategory, error)
	ListSubcategories(ctx context.Context) ([]*entity.Subcategory, error)
}

// CreateProductInput defines a new product. CreatedBy is the authenticated principal.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	SKU           string
	StockLevel    int
	SubcategoryID *uuid.UUID
	CreatedBy     uuid.UUID
	Images        []FileInput
}

// UpdateProductInput is a partial update; Images are appended to the existing ones.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	SKU           *string
	StockLevel    *int
	SubcategoryID *uuid.UUID
	Images        []FileInput
}

// SearchProductsInput is a paged search. Out of range values fall back to the defaults.
type SearchProductsInput struct {
	Query string
	Page  int
	Limit int
}

// Pagination describes the page returned by a search.
type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// SearchProductsOutput is one page of matches.
type SearchProductsOutput struct {
	Products   []*entity.Product `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ProductUsecase manages products.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SearchProducts(ctx context.Context, input *SearchProductsInput) (*SearchProductsOutput, error)
}
