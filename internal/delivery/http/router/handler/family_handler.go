package handler

import (
	"net/http"
	"strconv"
	"time"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FamilyHandler holds dependencies for family CRUD handlers.
type FamilyHandler struct {
	uc usecase.FamilyUsecase
}

// NewFamilyHandler is the constructor for FamilyHandler, injected by Fx.
func NewFamilyHandler(uc usecase.FamilyUsecase) *FamilyHandler {
	return &FamilyHandler{uc: uc}
}

type familyRequest struct {
	Name          string  `json:"nome_familia" validate:"required"`
	Address       string  `json:"endereco"`
	PostalCode    string  `json:"cep"`
	City          string  `json:"cidade"`
	State         string  `json:"estado"`
	Phone         string  `json:"telefone_principal"`
	ResponsibleID *string `json:"responsavel_id"`
	Notes         string  `json:"observacoes"`
	Active        *bool   `json:"ativo"`
}

type familyResponse struct {
	ID             string     `json:"familia_id"`
	CongregationID string     `json:"congregacao_id"`
	Name           string     `json:"nome_familia"`
	Address        string     `json:"endereco,omitempty"`
	PostalCode     string     `json:"cep,omitempty"`
	City           string     `json:"cidade,omitempty"`
	State          string     `json:"estado,omitempty"`
	Phone          string     `json:"telefone_principal,omitempty"`
	ResponsibleID  *uuid.UUID `json:"responsavel_id,omitempty"`
	Notes          string     `json:"observacoes,omitempty"`
	Active         bool       `json:"ativo"`
	CreatedAt      time.Time  `json:"created_at"`
}

type familyListResponse struct {
	Families []familyResponse `json:"families"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

func toFamilyResponse(family *entity.Family) familyResponse {
	return familyResponse{
		ID:             family.ID.String(),
		CongregationID: family.CongregationID.String(),
		Name:           family.Name,
		Address:        family.Address,
		PostalCode:     family.PostalCode,
		City:           family.City,
		State:          family.State,
		Phone:          family.Phone,
		ResponsibleID:  family.ResponsibleID,
		Notes:          family.Notes,
		Active:         family.Active,
		CreatedAt:      family.CreatedAt,
	}
}

func (req *familyRequest) toInput() (*usecase.FamilyInput, error) {
	input := &usecase.FamilyInput{
		Name:       req.Name,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		State:      req.State,
		Phone:      req.Phone,
		Notes:      req.Notes,
		Active:     req.Active,
	}

	if req.ResponsibleID != nil && *req.ResponsibleID != "" {
		responsibleID, err := uuid.Parse(*req.ResponsibleID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "responsavel_id must be a uuid")
		}
		input.ResponsibleID = &responsibleID
	}

	return input, nil
}

// List returns one page of the tenant's families.
func (h *FamilyHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.List(c.Request().Context(), &usecase.FamilyListInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := familyListResponse{
		Families: make([]familyResponse, 0, len(output.Families)),
		Total:    output.Total,
		Page:     output.Page,
		Limit:    output.Limit,
	}
	for _, family := range output.Families {
		resp.Families = append(resp.Families, toFamilyResponse(family))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single family of the request tenant.
func (h *FamilyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	family, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toFamilyResponse(family))
}

// Create stores a new family under the request tenant.
func (h *FamilyHandler) Create(c echo.Context) error {
	var req familyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	family, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toFamilyResponse(family))
}

// Update modifies an existing family.
func (h *FamilyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req familyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	family, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toFamilyResponse(family))
}

// Delete removes a family.
func (h *FamilyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
