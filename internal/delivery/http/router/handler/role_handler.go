package handler

import (
	"net/http"

	"ecclesia/internal/domain/entity"
	"ecclesia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role administration handlers.
type RoleHandler struct {
	uc usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

type permissionPayload struct {
	Resource string `json:"resource" validate:"required"`
	Action   string `json:"action" validate:"required"`
	Scope    string `json:"scope"`
}

type createRoleRequest struct {
	Name        string              `json:"name" validate:"required"`
	Permissions []permissionPayload `json:"permissions" validate:"dive"`
}

type roleResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Permissions []permissionPayload `json:"permissions"`
}

func toRoleResponse(role *entity.Role) roleResponse {
	perms := make([]permissionPayload, 0, len(role.Permissions))
	for _, perm := range role.Permissions {
		perms = append(perms, permissionPayload{
			Resource: perm.Resource,
			Action:   perm.Action,
			Scope:    string(perm.Scope),
		})
	}

	return roleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Permissions: perms,
	}
}

type accountRolesResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"nome"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

func toAccountRolesResponse(account *entity.Account) accountRolesResponse {
	return accountRolesResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Roles: account.Roles,
	}
}

// Create stores a new role with its permission grants.
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	perms := make([]entity.Permission, 0, len(req.Permissions))
	for _, perm := range req.Permissions {
		perms = append(perms, entity.Permission{
			Resource: perm.Resource,
			Action:   perm.Action,
			Scope:    entity.Scope(perm.Scope),
		})
	}

	role, err := h.uc.Create(c.Request().Context(), &usecase.CreateRoleInput{
		Name:        req.Name,
		Permissions: perms,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// List returns all roles.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, toRoleResponse(role))
	}

	return c.JSON(http.StatusOK, resp)
}

type roleNameRequest struct {
	Role string `json:"role" validate:"required"`
}

// Assign attaches a role name to the account in the path.
func (h *RoleHandler) Assign(c echo.Context) error {
	accountID, err := pathID(c)
	if err != nil {
		return err
	}

	var req roleNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.uc.AssignToAccount(c.Request().Context(), accountID, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toAccountRolesResponse(account))
}

// Revoke detaches a role name from the account in the path.
func (h *RoleHandler) Revoke(c echo.Context) error {
	accountID, err := pathID(c)
	if err != nil {
		return err
	}

	var req roleNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.uc.RevokeFromAccount(c.Request().Context(), accountID, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toAccountRolesResponse(account))
}
