package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	CategoryID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryName string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel mirrors the 'subcategories' table.
type SubcategoryModel struct {
	SubcategoryID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubcategoryName string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CategoryID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// ProductModel mirrors the 'products' table. Image URLs are stored as a JSON array.
type ProductModel struct {
	ProductID     uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"type:numeric(10,2);not null"`
	SKU           string                      `gorm:"column:sku;type:varchar(100);uniqueIndex;not null"`
	StockLevel    int                         `gorm:"not null"`
	SubcategoryID *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedBy     uuid.UUID                   `gorm:"type:uuid;not null"`
	ImageURL      datatypes.JSONSlice[string] `gorm:"column:image_url;type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
