// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddressInput is one postal address supplied on registration or update.
type AddressInput struct {
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name        string
	Email       string
	Password    string
	Gender      string
	DateOfBirth *time.Time
	PhoneNumber string
	RoleID      *uuid.UUID
	Addresses   []AddressInput
}

// LoginInput defines the data required for a user or seller to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
// A non-nil Addresses replaces the whole address list.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	Password    *string
	Gender      *string
	DateOfBirth *time.Time
	PhoneNumber *string
	RoleID      *uuid.UUID
	Addresses   *[]AddressInput
}

// --- Output DTOs ---

// UserAuthOutput is returned by registration and login.
type UserAuthOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*UserAuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*UserAuthOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
