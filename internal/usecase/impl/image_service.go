package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type imageService struct {
	imageRepo repository.ImageRepository
	uploader  *imageUploader
	logger    *slog.Logger
}

func NewImageService(imageRepo repository.ImageRepository, storage service.ObjectStorage, cfg *config.Config, logger *slog.Logger) usecase.ImageUsecase {
	return &imageService{
		imageRepo: imageRepo,
		uploader:  newImageUploader(storage, cfg),
		logger:    logger,
	}
}

func (srv *imageService) Upload(ctx context.Context, file usecase.FileInput) (*entity.Image, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	objects, err := srv.uploader.uploadAll(ctx, logger, []usecase.FileInput{file}, 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}

	image := &entity.Image{Name: file.Filename, URL: objects[0].URL}
	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.uploader.discard(ctx, logger, objects)

		return nil, errors.Wrap(err, "failed to store image record")
	}

	logger.Info("Image uploaded", slog.Any("imageID", image.ID), slog.String("url", image.URL))

	return image, nil
}

func (srv *imageService) List(ctx context.Context) ([]*entity.Image, error) {
	images, err := srv.imageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return images, nil
}
