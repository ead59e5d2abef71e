package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const companyLogosField = "companyLogos"

type SellerHandlerParams struct {
	fx.In

	SellerUC usecase.SellerUsecase
	Cookies  *middleware.TokenCookies
	Logger   *slog.Logger
}

// SellerHandler serves /api/seller.
type SellerHandler struct {
	uc      usecase.SellerUsecase
	cookies *middleware.TokenCookies
	logger  *slog.Logger
}

func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		uc:      params.SellerUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// RegisterSellerRequest is the multipart form posted to createSellers.
type RegisterSellerRequest struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Password    string `form:"password" json:"password" validate:"required,max=72"`
	CompanyName string `form:"company_name" json:"company_name" validate:"required"`
	GSTNumber   string `form:"gst_number" json:"gst_number" validate:"required"`
	PhoneNumber string `form:"phone_number" json:"phone_number"`
	BankDetails string `form:"bank_details" json:"bank_details"`
}

// UpdateSellerRequest is the JSON variant of a seller update.
type UpdateSellerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=1,max=72"`
	CompanyName *string `json:"company_name"`
	GSTNumber   *string `json:"gst_number"`
	PhoneNumber *string `json:"phone_number"`
	BankDetails *string `json:"bank_details"`
}

// RegisterSeller creates a seller with up to three company logos.
func (h *SellerHandler) RegisterSeller(c echo.Context) error {
	var req RegisterSellerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	logos, err := formFiles(c, companyLogosField, usecase.MaxCompanyLogos)
	if err != nil {
		return err
	}

	output, err := h.uc.RegisterSeller(c.Request().Context(), &usecase.RegisterSellerInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		GSTNumber:   req.GSTNumber,
		BankDetails: req.BankDetails,
		Logos:       logos,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Tokens)

	return response.Success(c, http.StatusCreated, authResponse{
		Seller:       output.Seller,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Seller registered successfully")
}

func (h *SellerHandler) Login(c echo.Context) error {
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
		Seller:       output.Seller,
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, "Login successful")
}

func (h *SellerHandler) GetSeller(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller retrieved successfully")
}

// UpdateSeller accepts JSON or a multipart form; posted logos replace the stored ones.
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateSellerInput
	if isMultipart(c) {
		input, err = sellerUpdateFromForm(c)
	} else {
		input, err = sellerUpdateFromJSON(c)
	}
	if err != nil {
		return err
	}

	seller, err := h.uc.UpdateSeller(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller updated successfully")
}

func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSeller(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller deleted successfully")
}

func sellerUpdateFromJSON(c echo.Context) (*usecase.UpdateSellerInput, error) {
	var req UpdateSellerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return &usecase.UpdateSellerInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		GSTNumber:   req.GSTNumber,
		BankDetails: req.BankDetails,
	}, nil
}

func sellerUpdateFromForm(c echo.Context) (*usecase.UpdateSellerInput, error) {
	input := &usecase.UpdateSellerInput{}
	fields := map[string]**string{
		"name":         &input.Name,
		"email":        &input.Email,
		"password":     &input.Password,
		"phone_number": &input.PhoneNumber,
		"company_name": &input.CompanyName,
		"gst_number":   &input.GSTNumber,
		"bank_details": &input.BankDetails,
	}
	for field, dst := range fields {
		value, err := formValue(c, field)
		if err != nil {
			return nil, err
		}
		*dst = value
	}

	logos, err := formFiles(c, companyLogosField, usecase.MaxCompanyLogos)
	if err != nil {
		return nil, err
	}
	input.Logos = logos

	return input, nil
}
