package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
	Logger *slog.Logger
}

// RoleHandler serves /api/userRole.
type RoleHandler struct {
	uc     usecase.RoleUsecase
	logger *slog.Logger
}

func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{uc: params.RoleUC, logger: params.Logger}
}

// RoleRequest names a role on create and rename.
type RoleRequest struct {
	Name string `json:"role_name" validate:"required"`
}

func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.uc.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, role, "Role created successfully")
}

func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles, "Roles retrieved successfully")
}

func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	role, err := h.uc.GetRole(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role retrieved successfully")
}

func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.uc.RenameRole(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role updated successfully")
}

func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRole(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role deleted successfully")
}
