package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product line in a user's cart. (UserID, ProductID) is unique.
type CartItem struct {
	ID           uuid.UUID `json:"cart_id"`
	UserID       uuid.UUID `json:"user_id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductImage string    `json:"product_image,omitempty"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// CartLine is a CartItem joined with the product fields shown in a cart view.
type CartLine struct {
	CartItem
	ProductName        string  `json:"name"`
	ProductDescription string  `json:"description"`
	ProductPrice       float64 `json:"price"`
}
