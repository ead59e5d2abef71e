package usecase

import "io"

// FileInput is one uploaded file.
type FileInput struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}
