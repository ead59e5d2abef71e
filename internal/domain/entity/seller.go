package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is a merchant account that lists products.
type Seller struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	CompanyName  string    `json:"company_name"`
	GSTNumber    string    `json:"gst_number"`
	BankDetails  string    `json:"bank_details,omitempty"`
	CompanyLogos []string  `json:"company_logos"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal returns the identity embedded in tokens issued for this seller.
func (s *Seller) Principal() Principal {
	return Principal{ID: s.ID, Email: s.Email}
}
