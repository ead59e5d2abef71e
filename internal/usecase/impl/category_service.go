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

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: strings.TrimSpace(name)}
	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			return nil, errors.Wrap(domainerrors.ErrCategoryAlreadyExists, "failed to create category")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Category created", slog.Any("categoryID", category.ID))

	return category, nil
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateSubcategory requires the parent category to exist.
func (srv *categoryService) CreateSubcategory(ctx context.Context, name string, categoryID uuid.UUID) (*entity.Subcategory, error) {
	if _, err := srv.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "failed to create subcategory")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	subcategory := &entity.Subcategory{Name: strings.TrimSpace(name), CategoryID: categoryID}
	if err := srv.categoryRepo.CreateSubcategory(ctx, subcategory); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubcategoryNameTaken):
			return nil, errors.Wrap(domainerrors.ErrSubcategoryAlreadyExists, "failed to create subcategory")
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "failed to create subcategory")
		}

		return nil, errors.Wrap(err, "failed to create subcategory")
	}

	return subcategory, nil
}

func (srv *categoryService) ListSubcategories(ctx context.Context) ([]*entity.Subcategory, error) {
	subcategories, err := srv.categoryRepo.ListSubcategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return subcategories, nil
}
