package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded files and returns the URL they are served from.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
	Delete(ctx context.Context, key string) error
}
