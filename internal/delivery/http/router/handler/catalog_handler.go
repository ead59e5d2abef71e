package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const productImagesField = "productImages"

type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	ProductUC  usecase.ProductUsecase
	Logger     *slog.Logger
}

// CatalogHandler serves categories, subcategories and products under /api/products.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	productUC  usecase.ProductUsecase
	logger     *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		productUC:  params.ProductUC,
		logger:     params.Logger,
	}
}

type CategoryRequest struct {
	Name string `json:"category_name" validate:"required"`
}

type SubcategoryRequest struct {
	Name       string `json:"subcategory_name" validate:"required"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// CreateProductRequest is the multipart form posted to create-product.
type CreateProductRequest struct {
	Name          string  `form:"name" json:"name" validate:"required"`
	Description   string  `form:"description" json:"description"`
	Price         float64 `form:"price" json:"price" validate:"required,gt=0"`
	SKU           string  `form:"sku" json:"sku" validate:"required"`
	StockLevel    int     `form:"stock_level" json:"stock_level" validate:"gte=0"`
	SubcategoryID string  `form:"subcategory_id" json:"subcategory_id"`
}

// UpdateProductRequest is the JSON variant of a product update.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	SKU           *string  `json:"sku"`
	StockLevel    *int     `json:"stock_level" validate:"omitempty,gte=0"`
	SubcategoryID *string  `json:"subcategory_id"`
}

// SearchProductsRequest binds the search query string.
type SearchProductsRequest struct {
	Query string `query:"query"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	var req SubcategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("category_id must be a UUID")
	}

	subcategory, err := h.categoryUC.CreateSubcategory(c.Request().Context(), req.Name, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subcategory, "Subcategory created successfully")
}

func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	subcategories, err := h.categoryUC.ListSubcategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subcategories, "Subcategories retrieved successfully")
}

// CreateProduct stores a product owned by the caller with up to five images.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	createdBy, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subcategoryID, err := optionalUUID("subcategory_id", req.SubcategoryID)
	if err != nil {
		return err
	}

	images, err := formFiles(c, productImagesField, usecase.MaxProductImages)
	if err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		SKU:           req.SKU,
		StockLevel:    req.StockLevel,
		SubcategoryID: subcategoryID,
		CreatedBy:     createdBy,
		Images:        images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// UpdateProduct accepts JSON or a multipart form; posted images are appended.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if isMultipart(c) {
		input, err = productUpdateFromForm(c)
	} else {
		input, err = productUpdateFromJSON(c)
	}
	if err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// SearchProducts pages through case-insensitive name/description matches.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	var req SearchProductsRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("page and limit must be integers")
	}

	output, err := h.productUC.SearchProducts(c.Request().Context(), &usecase.SearchProductsInput{
		Query: req.Query,
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

func productUpdateFromJSON(c echo.Context) (*usecase.UpdateProductInput, error) {
	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
		StockLevel:  req.StockLevel,
	}
	if req.SubcategoryID != nil {
		id, err := optionalUUID("subcategory_id", *req.SubcategoryID)
		if err != nil {
			return nil, err
		}
		input.SubcategoryID = id
	}

	return input, nil
}

func productUpdateFromForm(c echo.Context) (*usecase.UpdateProductInput, error) {
	input := &usecase.UpdateProductInput{}

	for field, dst := range map[string]**string{
		"name":        &input.Name,
		"description": &input.Description,
		"sku":         &input.SKU,
	} {
		value, err := formValue(c, field)
		if err != nil {
			return nil, err
		}
		*dst = value
	}

	price, err := formValue(c, "price")
	if err != nil {
		return nil, err
	}
	if price != nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(*price), 64)
		if err != nil || v <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a positive number")
		}
		input.Price = &v
	}

	stock, err := formValue(c, "stock_level")
	if err != nil {
		return nil, err
	}
	if stock != nil {
		v, err := strconv.Atoi(strings.TrimSpace(*stock))
		if err != nil || v < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("stock_level must be a non-negative integer")
		}
		input.StockLevel = &v
	}

	subcategory, err := formValue(c, "subcategory_id")
	if err != nil {
		return nil, err
	}
	if subcategory != nil {
		if input.SubcategoryID, err = optionalUUID("subcategory_id", *subcategory); err != nil {
			return nil, err
		}
	}

	if input.Images, err = formFiles(c, productImagesField, usecase.MaxProductImages); err != nil {
		return nil, err
	}

	return input, nil
}
