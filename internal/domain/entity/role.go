package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named permission group users may reference.
type Role struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
