package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxCompanyLogos is the most logo files a seller may upload at once.
const MaxCompanyLogos = 3

// RegisterSellerInput defines the data required to register a new seller.
type RegisterSellerInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	CompanyName string
	GSTNumber   string
	BankDetails string
	Logos       []FileInput
}

// UpdateSellerInput is a partial update; non-empty Logos replace the stored logos.
type UpdateSellerInput struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	CompanyName *string
	GSTNumber   *string
	BankDetails *string
	Logos       []FileInput
}

// SellerAuthOutput is returned by seller registration and login.
type SellerAuthOutput struct {
	Seller *entity.Seller
	Tokens *entity.TokenPair
}

// SellerUsecase defines seller account operations.
type SellerUsecase interface {
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*SellerAuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SellerAuthOutput, error)
	GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	UpdateSeller(ctx context.Context, id uuid.UUID, input *UpdateSellerInput) (*entity.Seller, error)
	DeleteSeller(ctx context.Context, id uuid.UUID) error
}
