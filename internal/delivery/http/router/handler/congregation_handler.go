package handler

import (
	"net/http"
	"time"

	"ecclesia/internal/domain/entity"
	"ecclesia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CongregationHandler holds dependencies for congregation CRUD handlers.
type CongregationHandler struct {
	uc usecase.CongregationUsecase
}

// NewCongregationHandler is the constructor for CongregationHandler, injected by Fx.
func NewCongregationHandler(uc usecase.CongregationUsecase) *CongregationHandler {
	return &CongregationHandler{uc: uc}
}

type congregationRequest struct {
	Name    string `json:"nome" validate:"required"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Plan    string `json:"plano"`
}

type congregationResponse struct {
	ID        string    `json:"congregacao_id"`
	Name      string    `json:"nome"`
	Address   string    `json:"endereco,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Plan      string    `json:"plano"`
	CreatedAt time.Time `json:"created_at"`
}

func toCongregationResponse(congregation *entity.Congregation) congregationResponse {
	return congregationResponse{
		ID:        congregation.ID.String(),
		Name:      congregation.Name,
		Address:   congregation.Address,
		Phone:     congregation.Phone,
		Email:     congregation.Email,
		Plan:      congregation.Plan,
		CreatedAt: congregation.CreatedAt,
	}
}

func (req *congregationRequest) toInput() *usecase.CongregationInput {
	return &usecase.CongregationInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Plan:    req.Plan,
	}
}

// List returns all congregations.
func (h *CongregationHandler) List(c echo.Context) error {
	congregations, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]congregationResponse, 0, len(congregations))
	for _, congregation := range congregations {
		resp = append(resp, toCongregationResponse(congregation))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single congregation.
func (h *CongregationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	congregation, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toCongregationResponse(congregation))
}

// Create stores a new congregation.
func (h *CongregationHandler) Create(c echo.Context) error {
	var req congregationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	congregation, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toCongregationResponse(congregation))
}

// Update modifies an existing congregation.
func (h *CongregationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req congregationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	congregation, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toCongregationResponse(congregation))
}

// Delete removes a congregation.
func (h *CongregationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
