package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
)

const uploadPrefix = "uploads"

type storedObject struct {
	Key  string
	URL  string
	Name string
}

// imageUploader validates uploaded files and writes them to object storage.
type imageUploader struct {
	storage service.ObjectStorage
	maxSize int64
}

func newImageUploader(storage service.ObjectStorage, cfg *config.Config) *imageUploader {
	maxSize := int64(5 << 20)
	if cfg != nil && cfg.Storage != nil && cfg.Storage.MaxImageSize > 0 {
		maxSize = cfg.Storage.MaxImageSize
	}

	return &imageUploader{storage: storage, maxSize: maxSize}
}

// uploadAll stores every file or none of them.
func (u *imageUploader) uploadAll(ctx context.Context, logger *slog.Logger, files []usecase.FileInput, limit int) ([]storedObject, error) {
	if len(files) > limit {
		return nil, domainerrors.ErrTooManyFiles.WithDetails(fmt.Sprintf("at most %d files are accepted", limit))
	}

	stored := make([]storedObject, 0, len(files))
	for _, file := range files {
		obj, err := u.upload(ctx, file)
		if err != nil {
			u.discard(ctx, logger, stored)

			return nil, err
		}
		stored = append(stored, obj)
	}

	return stored, nil
}

func (u *imageUploader) upload(ctx context.Context, file usecase.FileInput) (storedObject, error) {
	if file.Size > u.maxSize {
		return storedObject{}, domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", file.Filename, util.FormatBytes(u.maxSize)))
	}
	if file.Open == nil {
		return storedObject{}, domainerrors.ErrInvalidImage.WithDetails(file.Filename + " has no content")
	}

	rc, err := file.Open()
	if err != nil {
		return storedObject{}, errors.Wrapf(err, "failed to open upload %s", file.Filename)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, u.maxSize+1))
	if err != nil {
		return storedObject{}, errors.Wrapf(err, "failed to read upload %s", file.Filename)
	}
	if int64(len(data)) > u.maxSize {
		return storedObject{}, domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", file.Filename, util.FormatBytes(u.maxSize)))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return storedObject{}, domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("%s is %s, not an image", file.Filename, mtype.String()))
	}

	key := util.NewObjectKey(uploadPrefix, file.Filename)
	url, err := u.storage.Put(ctx, key, mtype.String(), bytes.NewReader(data))
	if err != nil {
		return storedObject{}, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return storedObject{Key: key, URL: url, Name: file.Filename}, nil
}

// discard removes objects whose owning record was never written. Failures are only logged.
func (u *imageUploader) discard(ctx context.Context, logger *slog.Logger, objects []storedObject) {
	for _, obj := range objects {
		if err := u.storage.Delete(ctx, obj.Key); err != nil {
			logger.Warn("Failed to delete orphaned upload", slog.String("key", obj.Key), slog.Any("error", err))
		}
	}
}

func objectURLs(objects []storedObject) []string {
	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		urls = append(urls, obj.URL)
	}

	return urls
}
