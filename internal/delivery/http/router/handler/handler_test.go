package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type productUsecaseMock struct{ mock.Mock }

func (m *productUsecaseMock) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	ret := m.Called(ctx, input)
	p, _ := ret.Get(0).(*entity.Product)

	return p, ret.Error(1)
}

func (m *productUsecaseMock) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	ret := m.Called(ctx)
	p, _ := ret.Get(0).([]*entity.Product)

	return p, ret.Error(1)
}

func (m *productUsecaseMock) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := m.Called(ctx, id)
	p, _ := ret.Get(0).(*entity.Product)

	return p, ret.Error(1)
}

func (m *productUsecaseMock) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	ret := m.Called(ctx, id, input)
	p, _ := ret.Get(0).(*entity.Product)

	return p, ret.Error(1)
}

func (m *productUsecaseMock) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *productUsecaseMock) SearchProducts(ctx context.Context, input *usecase.SearchProductsInput) (*usecase.SearchProductsOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*usecase.SearchProductsOutput)

	return out, ret.Error(1)
}

type sellerUsecaseMock struct{ mock.Mock }

func (m *sellerUsecaseMock) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.SellerAuthOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*usecase.SellerAuthOutput)

	return out, ret.Error(1)
}

func (m *sellerUsecaseMock) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SellerAuthOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*usecase.SellerAuthOutput)

	return out, ret.Error(1)
}

func (m *sellerUsecaseMock) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	ret := m.Called(ctx, id)
	out, _ := ret.Get(0).(*entity.Seller)

	return out, ret.Error(1)
}

func (m *sellerUsecaseMock) UpdateSeller(ctx context.Context, id uuid.UUID, input *usecase.UpdateSellerInput) (*entity.Seller, error) {
	ret := m.Called(ctx, id, input)
	out, _ := ret.Get(0).(*entity.Seller)

	return out, ret.Error(1)
}

func (m *sellerUsecaseMock) DeleteSeller(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type cartUsecaseMock struct{ mock.Mock }

func (m *cartUsecaseMock) AddItem(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*entity.CartItem)

	return out, ret.Error(1)
}

func (m *cartUsecaseMock) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	ret := m.Called(ctx, userID)
	out, _ := ret.Get(0).([]*entity.CartLine)

	return out, ret.Error(1)
}

func (m *cartUsecaseMock) UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) (*entity.CartItem, error) {
	ret := m.Called(ctx, userID, cartID, quantity)
	out, _ := ret.Get(0).(*entity.CartItem)

	return out, ret.Error(1)
}

func (m *cartUsecaseMock) RemoveItem(ctx context.Context, userID, cartID uuid.UUID) error {
	return m.Called(ctx, userID, cartID).Error(0)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asCaller stands in for Authenticate.
func asCaller(id uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetClaims(c, &entity.TokenClaims{ID: id, Email: "caller@x.com"})

			return next(c)
		}
	}
}

type multipartFile struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...multipartFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

type testEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"errorCode"`
	Details   string          `json:"details"`
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestCatalogHandler_SearchProducts(t *testing.T) {
	uc := &productUsecaseMock{}
	h := NewCatalogHandler(CatalogHandlerParams{ProductUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.GET("/search", h.SearchProducts)

	uc.On("SearchProducts", mock.Anything, &usecase.SearchProductsInput{Query: "phone", Page: 2, Limit: 3}).
		Return(&usecase.SearchProductsOutput{
			Products:   []*entity.Product{{Name: "Phone"}},
			Pagination: usecase.Pagination{TotalItems: 7, TotalPages: 3, CurrentPage: 2, ItemsPerPage: 3},
		}, nil).Once()

	rec, env := serve(t, e, httptest.NewRequest(http.MethodGet, "/search?query=phone&page=2&limit=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Products   []map[string]any `json:"products"`
		Pagination map[string]int   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Products, 1)
	assert.Equal(t, map[string]int{"totalItems": 7, "totalPages": 3, "currentPage": 2, "itemsPerPage": 3}, data.Pagination)
	uc.AssertExpectations(t)
}

func TestCatalogHandler_SearchProductsRejectsNonNumericPage(t *testing.T) {
	uc := &productUsecaseMock{}
	h := NewCatalogHandler(CatalogHandlerParams{ProductUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.GET("/search", h.SearchProducts)

	rec, env := serve(t, e, httptest.NewRequest(http.MethodGet, "/search?page=two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.ErrorCode)
	uc.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
}

func TestCatalogHandler_CreateProductUsesCaller(t *testing.T) {
	caller := uuid.New()
	subcategory := uuid.New()
	uc := &productUsecaseMock{}
	h := NewCatalogHandler(CatalogHandlerParams{ProductUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/create-product", h.CreateProduct, asCaller(caller))

	uc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.CreatedBy == caller && in.Name == "Lamp" && in.Price == 19.5 && in.StockLevel == 4 &&
			in.SubcategoryID != nil && *in.SubcategoryID == subcategory && len(in.Images) == 1
	})).Return(&entity.Product{ID: uuid.New(), Name: "Lamp", CreatedBy: caller}, nil).Once()

	body, contentType := multipartBody(t, map[string]string{
		"name": "Lamp", "price": "19.5", "sku": "L-1", "stock_level": "4", "subcategory_id": subcategory.String(),
	}, multipartFile{field: "productImages", name: "lamp.png", data: pngHeader})
	req := httptest.NewRequest(http.MethodPost, "/create-product", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, env := serve(t, e, req)

	assert.Equal(t, http.StatusCreated, rec.Code, env.Error)
	uc.AssertExpectations(t)
}

func TestCatalogHandler_UpdateProductJSON(t *testing.T) {
	id := uuid.New()
	uc := &productUsecaseMock{}
	h := NewCatalogHandler(CatalogHandlerParams{ProductUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.PUT("/products/:id", h.UpdateProduct)

	uc.On("UpdateProduct", mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
		return in.Name == nil && in.Price != nil && *in.Price == 12 && in.Images == nil
	})).Return(&entity.Product{ID: id, Price: 12}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/products/"+id.String(), strings.NewReader(`{"price":12}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec, _ := serve(t, e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestCatalogHandler_GetProductBadID(t *testing.T) {
	h := NewCatalogHandler(CatalogHandlerParams{ProductUC: &productUsecaseMock{}, Logger: discardLogger()})
	e := newTestEcho()
	e.GET("/products/:id", h.GetProduct)

	rec, env := serve(t, e, httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be a UUID", env.Details)
}

func TestSellerHandler_RegisterSellerWithLogos(t *testing.T) {
	uc := &sellerUsecaseMock{}
	cfg := &config.Config{}
	h := NewSellerHandler(SellerHandlerParams{SellerUC: uc, Cookies: middleware.NewTokenCookies(cfg), Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/createSellers", h.RegisterSeller)

	var received *usecase.RegisterSellerInput
	uc.On("RegisterSeller", mock.Anything, mock.AnythingOfType("*usecase.RegisterSellerInput")).
		Run(func(args mock.Arguments) { received = args.Get(1).(*usecase.RegisterSellerInput) }).
		Return(&usecase.SellerAuthOutput{
			Seller: &entity.Seller{ID: uuid.New(), Email: "s@x.com"},
			Tokens: &entity.TokenPair{AccessToken: "a", RefreshToken: "r"},
		}, nil).Once()

	body, contentType := multipartBody(t, map[string]string{
		"name": "Shop", "email": "s@x.com", "password": "pw", "company_name": "Shop Ltd", "gst_number": "GST1",
	},
		multipartFile{field: "companyLogos", name: "a.png", data: pngHeader},
		multipartFile{field: "companyLogos", name: "b.png", data: pngHeader},
	)
	req := httptest.NewRequest(http.MethodPost, "/createSellers", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, env := serve(t, e, req)

	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	require.NotNil(t, received)
	assert.Equal(t, "Shop Ltd", received.CompanyName)
	require.Len(t, received.Logos, 2)

	rc, err := received.Logos[0].Open()
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, pngHeader, data)

	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "a", out["accessToken"])
	assert.Equal(t, "r", out["refreshToken"])
	assert.Contains(t, out, "seller")
}

func TestSellerHandler_RegisterSellerTooManyLogos(t *testing.T) {
	uc := &sellerUsecaseMock{}
	h := NewSellerHandler(SellerHandlerParams{SellerUC: uc, Cookies: middleware.NewTokenCookies(&config.Config{}), Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/createSellers", h.RegisterSeller)

	files := make([]multipartFile, 0, usecase.MaxCompanyLogos+1)
	for range usecase.MaxCompanyLogos + 1 {
		files = append(files, multipartFile{field: "companyLogos", name: "logo.png", data: pngHeader})
	}
	body, contentType := multipartBody(t, map[string]string{
		"name": "Shop", "email": "s@x.com", "password": "pw", "company_name": "Shop Ltd", "gst_number": "GST1",
	}, files...)
	req := httptest.NewRequest(http.MethodPost, "/createSellers", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, env := serve(t, e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrTooManyFiles.ErrorCode(), env.ErrorCode)
	uc.AssertNotCalled(t, "RegisterSeller", mock.Anything, mock.Anything)
}

func TestSellerHandler_RegisterSellerMissingFields(t *testing.T) {
	uc := &sellerUsecaseMock{}
	h := NewSellerHandler(SellerHandlerParams{SellerUC: uc, Cookies: middleware.NewTokenCookies(&config.Config{}), Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/createSellers", h.RegisterSeller)

	body, contentType := multipartBody(t, map[string]string{"name": "Shop", "email": "s@x.com", "password": "pw"})
	req := httptest.NewRequest(http.MethodPost, "/createSellers", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, env := serve(t, e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "company_name is required; gst_number is required", env.Details)
}

func TestSellerHandler_UpdateSellerForm(t *testing.T) {
	id := uuid.New()
	uc := &sellerUsecaseMock{}
	h := NewSellerHandler(SellerHandlerParams{SellerUC: uc, Cookies: middleware.NewTokenCookies(&config.Config{}), Logger: discardLogger()})
	e := newTestEcho()
	e.PUT("/sellers/:id", h.UpdateSeller)

	uc.On("UpdateSeller", mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateSellerInput) bool {
		return in.CompanyName != nil && *in.CompanyName == "New Co" && in.Name == nil && len(in.Logos) == 1
	})).Return(&entity.Seller{ID: id, CompanyName: "New Co"}, nil).Once()

	body, contentType := multipartBody(t, map[string]string{"company_name": "New Co"},
		multipartFile{field: "companyLogos", name: "new.png", data: pngHeader})
	req := httptest.NewRequest(http.MethodPut, "/sellers/"+id.String(), body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, _ := serve(t, e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestCartHandler_ScopedToCaller(t *testing.T) {
	caller := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()
	uc := &cartUsecaseMock{}
	h := NewCartHandler(CartHandlerParams{CartUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/createCart", h.AddItem, asCaller(caller))
	e.PUT("/updateCart", h.UpdateItem, asCaller(caller))
	e.DELETE("/delete/:cart_id", h.RemoveItem, asCaller(caller))

	uc.On("AddItem", mock.Anything, &usecase.AddToCartInput{UserID: caller, ProductID: productID, Quantity: 0}).
		Return(&entity.CartItem{ID: cartID, UserID: caller, ProductID: productID, Quantity: 1}, nil).Once()
	uc.On("UpdateQuantity", mock.Anything, caller, cartID, 3).
		Return(&entity.CartItem{ID: cartID, Quantity: 3}, nil).Once()
	uc.On("RemoveItem", mock.Anything, caller, cartID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/createCart", strings.NewReader(`{"product_id":"`+productID.String()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec, _ := serve(t, e, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/updateCart", strings.NewReader(`{"cart_id":"`+cartID.String()+`","quantity":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec, _ = serve(t, e, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, e, httptest.NewRequest(http.MethodDelete, "/delete/"+cartID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestCartHandler_UpdateRejectsZeroQuantity(t *testing.T) {
	uc := &cartUsecaseMock{}
	h := NewCartHandler(CartHandlerParams{CartUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.PUT("/updateCart", h.UpdateItem, asCaller(uuid.New()))

	req := httptest.NewRequest(http.MethodPut, "/updateCart", strings.NewReader(`{"cart_id":"`+uuid.NewString()+`","quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec, env := serve(t, e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity is required", env.Details)
	uc.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_WithoutClaimsIs401(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: &cartUsecaseMock{}, Logger: discardLogger()})
	e := newTestEcho()
	e.GET("/getCart/:user_id", h.GetCart)

	rec, env := serve(t, e, httptest.NewRequest(http.MethodGet, "/getCart/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.ErrorCode)
}

func TestImageHandler_UploadRequiresFile(t *testing.T) {
	h := NewImageHandler(ImageHandlerParams{Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/upload", h.Upload)

	body, contentType := multipartBody(t, map[string]string{"note": "no file"})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, env := serve(t, e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "image file is required", env.Details)
}
