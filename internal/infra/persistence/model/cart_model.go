package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. (user_id, product_id) is unique.
type CartModel struct {
	CartID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cart_user_product"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cart_user_product"`
	ProductImage string    `gorm:"type:text"`
	Quantity     int       `gorm:"not null"`
	AddedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartLineRow is the scan target of the cart/product join.
type CartLineRow struct {
	CartModel
	Name        string
	Description string
	Price       float64
}
