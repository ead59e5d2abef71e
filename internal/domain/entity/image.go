package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is an uploaded file and the public URL it is served from.
type Image struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
