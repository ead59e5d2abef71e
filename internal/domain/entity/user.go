// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shopper account. It authenticates with email and password.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // bcrypt hash; never serialized
	Gender       string     `json:"gender,omitempty"`
	DateOfBirth  *time.Time `json:"dob,omitempty"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	RoleID       *uuid.UUID `json:"role_id,omitempty"`
	Addresses    []*Address `json:"addresses,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Principal returns the identity embedded in tokens issued for this user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Email: u.Email}
}
