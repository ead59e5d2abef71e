// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	Cookies *middleware.TokenCookies
	Logger  *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	cookies *middleware.TokenCookies
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:      params.UserUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// AddressRequest is one postal address in a user payload.
type AddressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// RegisterUserRequest represents the request body for creating a user
type RegisterUserRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email" validate:"required,email"`
	Password    string           `json:"password" validate:"required,max=72"`
	RoleID      string           `json:"role_id"`
	Gender      string           `json:"gender"`
	DateOfBirth string           `json:"dob"`
	PhoneNumber string           `json:"phone_number"`
	Addresses   []AddressRequest `json:"addresses" validate:"dive"`
}

// LoginRequest is shared by user and seller login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateUserRequest is a partial update; omitted fields are unchanged.
type UpdateUserRequest struct {
	Name        *string           `json:"name"`
	Email       *string           `json:"email" validate:"omitempty,email"`
	Password    *string           `json:"password" validate:"omitempty,min=1,max=72"`
	RoleID      *string           `json:"role_id"`
	Gender      *string           `json:"gender"`
	DateOfBirth *string           `json:"dob"`
	PhoneNumber *string           `json:"phone_number"`
	Addresses   *[]AddressRequest `json:"addresses" validate:"omitempty,dive"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	roleID, err := optionalUUID("role_id", req.RoleID)
	if err != nil {
		return err
	}
	dob, err := parseDate("dob", req.DateOfBirth)
	if err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      req.Gender,
		DateOfBirth: dob,
		PhoneNumber: req.PhoneNumber,
		RoleID:      roleID,
		Addresses:   toAddressInputs(req.Addresses),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Tokens)

	return response.Success(c, http.StatusCreated, authResponse{
		User:         output.User,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Tokens)

	return response.Success(c, http.StatusOK, authResponse{
		User:         output.User,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Login successful")
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetUser returns one user with addresses.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// UpdateUser applies a partial update.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	}
	if req.RoleID != nil {
		if input.RoleID, err = optionalUUID("role_id", *req.RoleID); err != nil {
			return err
		}
	}
	if req.DateOfBirth != nil {
		if input.DateOfBirth, err = parseDate("dob", *req.DateOfBirth); err != nil {
			return err
		}
	}
	if req.Addresses != nil {
		addresses := toAddressInputs(*req.Addresses)
		input.Addresses = &addresses
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes a user with their addresses and cart.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// Me echoes the verified token claims. It never touches the database.
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, claims, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func toAddressInputs(reqs []AddressRequest) []usecase.AddressInput {
	addresses := make([]usecase.AddressInput, 0, len(reqs))
	for _, a := range reqs {
		addresses = append(addresses, usecase.AddressInput{
			Label:      a.Label,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}

	return addresses
}
