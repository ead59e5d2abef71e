package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	categoryM := &model.CategoryModel{CategoryID: category.ID, CategoryName: category.Name}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategoryNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("category_id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return &entity.Category{ID: categoryM.CategoryID, Name: categoryM.CategoryName, CreatedAt: categoryM.CreatedAt}, nil
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("category_name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, &entity.Category{ID: row.CategoryID, Name: row.CategoryName, CreatedAt: row.CreatedAt})
	}

	return categories, nil
}

func (repo *categoryRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	if subcategory.ID == uuid.Nil {
		subcategory.ID = uuid.New()
	}
	subM := &model.SubcategoryModel{
		SubcategoryID:   subcategory.ID,
		SubcategoryName: subcategory.Name,
		CategoryID:      subcategory.CategoryID,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrSubcategoryNameTaken
		case isForeignKeyConstraintViolation(err):
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subcategory")
	}
	subcategory.CreatedAt = subM.CreatedAt

	return nil
}

func (repo *categoryRepository) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	var subM model.SubcategoryModel
	if err := repo.db.WithContext(ctx).Where("subcategory_id = ?", id).First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubcategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find subcategory")
	}

	return toSubcategoryDomain(&subM), nil
}

func (repo *categoryRepository) ListSubcategories(ctx context.Context) ([]*entity.Subcategory, error) {
	var rows []model.SubcategoryModel
	if err := repo.db.WithContext(ctx).Order("subcategory_name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subcategories")
	}

	subcategories := make([]*entity.Subcategory, 0, len(rows))
	for i := range rows {
		subcategories = append(subcategories, toSubcategoryDomain(&rows[i]))
	}

	return subcategories, nil
}

func toSubcategoryDomain(data *model.SubcategoryModel) *entity.Subcategory {
	return &entity.Subcategory{
		ID:         data.SubcategoryID,
		Name:       data.SubcategoryName,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
	}
}
