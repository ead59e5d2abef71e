package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves /api/cart. The owning user always comes from the token.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{uc: params.CartUC, logger: params.Logger}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type UpdateCartRequest struct {
	CartID   string `json:"cart_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("product_id must be a UUID")
	}

	item, err := h.uc.AddItem(c.Request().Context(), &usecase.AddToCartInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// GetCart lists the caller's cart. The route is guarded by RequireSelf("user_id").
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	lines, err := h.uc.ListItems(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lines, "Cart retrieved successfully")
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("cart_id must be a UUID")
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), userID, cartID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart updated successfully")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	cartID, err := pathUUID(c, "cart_id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, cartID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
