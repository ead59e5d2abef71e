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

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	imageM := &model.ImageModel{ID: image.ID, Name: image.Name, URL: image.URL}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}
	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *imageRepository) List(ctx context.Context) ([]*entity.Image, error) {
	var rows []model.ImageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list images")
	}

	images := make([]*entity.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, &entity.Image{ID: row.ID, Name: row.Name, URL: row.URL, CreatedAt: row.CreatedAt})
	}

	return images, nil
}
