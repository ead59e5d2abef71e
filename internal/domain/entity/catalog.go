package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level of the product taxonomy.
type Category struct {
	ID        uuid.UUID `json:"category_id"`
	Name      string    `json:"category_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Subcategory belongs to exactly one Category.
type Subcategory struct {
	ID         uuid.UUID `json:"subcategory_id"`
	Name       string    `json:"subcategory_name"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Product is a sellable item.
type Product struct {
	ID            uuid.UUID  `json:"product_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	SKU           string     `json:"sku"`
	StockLevel    int        `json:"stock_level"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	CreatedBy     uuid.UUID  `json:"created_by"`
	ImageURLs     []string   `json:"image_url"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}

	return p.ImageURLs[0]
}

// ProductQuery describes a paged full-text lookup over name and description.
type ProductQuery struct {
	Term   string
	Offset int
	Limit  int
}
