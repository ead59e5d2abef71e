package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	uploader     *imageUploader
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Storage      service.ObjectStorage
	Config       *config.Config
	Logger       *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		uploader:     newImageUploader(params.Storage, params.Config),
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	logger := srv.log(ctx)

	if err := srv.ensureSubcategory(ctx, input.SubcategoryID); err != nil {
		return nil, err
	}

	images, err := srv.uploader.uploadAll(ctx, logger, input.Images, usecase.MaxProductImages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product images")
	}

	product := &entity.Product{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		SKU:           strings.TrimSpace(input.SKU),
		StockLevel:    input.StockLevel,
		SubcategoryID: input.SubcategoryID,
		CreatedBy:     input.CreatedBy,
		ImageURLs:     objectURLs(images),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.uploader.discard(ctx, logger, images)

		return nil, mapProductRepoError(err, "failed to create product")
	}

	logger.Info("Product created", slog.Any("productID", product.ID), slog.Int("images", len(images)))

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductRepoError(err, "failed to find product")
	}

	return product, nil
}

// UpdateProduct applies a partial update. Uploaded images are appended to the existing ones.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	logger := srv.log(ctx)

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductRepoError(err, "failed to find product")
	}

	if input.SubcategoryID != nil {
		if err := srv.ensureSubcategory(ctx, input.SubcategoryID); err != nil {
			return nil, err
		}
		product.SubcategoryID = input.SubcategoryID
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SKU != nil {
		product.SKU = strings.TrimSpace(*input.SKU)
	}
	if input.StockLevel != nil {
		product.StockLevel = *input.StockLevel
	}

	images, err := srv.uploader.uploadAll(ctx, logger, input.Images, usecase.MaxProductImages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product images")
	}
	product.ImageURLs = append(product.ImageURLs, objectURLs(images)...)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.uploader.discard(ctx, logger, images)

		return nil, mapProductRepoError(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductRepoError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// SearchProducts returns one page of products matching the query in name or description.
func (srv *productService) SearchProducts(ctx context.Context, input *usecase.SearchProductsInput) (*usecase.SearchProductsOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	products, total, err := srv.productRepo.Search(ctx, entity.ProductQuery{
		Term:   strings.TrimSpace(input.Query),
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}
	if products == nil {
		products = []*entity.Product{}
	}

	return &usecase.SearchProductsOutput{
		Products: products,
		Pagination: usecase.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
			CurrentPage:  page,
			ItemsPerPage: limit,
		},
	}, nil
}

func (srv *productService) ensureSubcategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}

	if _, err := srv.categoryRepo.FindSubcategoryByID(ctx, *id); err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return errors.Wrap(domainerrors.ErrSubcategoryNotFound, "unknown subcategory")
		}

		return errors.Wrap(err, "failed to find subcategory")
	}

	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = usecase.DefaultSearchPage
	}
	if limit < 1 {
		limit = usecase.DefaultSearchLimit
	}
	if limit > usecase.MaxSearchLimit {
		limit = usecase.MaxSearchLimit
	}
	if maxPage := usecase.MaxSearchOffset/limit + 1; page > maxPage {
		page = maxPage
	}

	return page, limit
}

func mapProductRepoError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, msg)
	case errors.Is(err, repository.ErrProductSKUTaken):
		return errors.Wrap(domainerrors.ErrProductAlreadyExists, msg)
	case errors.Is(err, repository.ErrProductReferenceBroken):
		return errors.Wrap(domainerrors.ErrSubcategoryNotFound, msg)
	case errors.Is(err, repository.ErrProductInvalid):
		return domainerrors.ErrValidationFailed.WithDetails("price and stock_level must not be negative")
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
