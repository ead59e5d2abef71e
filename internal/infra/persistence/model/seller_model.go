package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SellerModel mirrors the 'sellers' table. Logo URLs are stored as a JSON array.
type SellerModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name         string                      `gorm:"type:varchar(100);not null"`
	Email        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string                      `gorm:"column:password_hash;type:varchar(255);not null"`
	PhoneNumber  string                      `gorm:"type:varchar(30)"`
	CompanyName  string                      `gorm:"type:varchar(255);not null"`
	GSTNumber    string                      `gorm:"column:gst_number;type:varchar(50);not null"`
	BankDetails  string                      `gorm:"type:text"`
	CompanyLogos datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
