package handler

import (
	"net/http"
	"time"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// MemberHandler holds dependencies for member CRUD handlers.
type MemberHandler struct {
	uc usecase.MemberUsecase
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

type memberRequest struct {
	Name      string  `json:"nome" validate:"required"`
	CPF       string  `json:"cpf"`
	BirthDate string  `json:"data_nascimento"`
	Phone     string  `json:"telefone"`
	Email     string  `json:"email" validate:"omitempty,email"`
	FamilyID  *string `json:"familia_id"`
}

type memberResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"nome"`
	CPF            string     `json:"cpf,omitempty"`
	BirthDate      string     `json:"data_nascimento,omitempty"`
	Phone          string     `json:"telefone,omitempty"`
	Email          string     `json:"email,omitempty"`
	CongregationID *uuid.UUID `json:"congregacao_id,omitempty"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	FamilyID       *uuid.UUID `json:"familia_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toMemberResponse(member *entity.Member) memberResponse {
	resp := memberResponse{
		ID:             member.ID.String(),
		Name:           member.Name,
		CPF:            member.CPF,
		Phone:          member.Phone,
		Email:          member.Email,
		CongregationID: member.CongregationID,
		CreatedBy:      member.CreatedBy,
		FamilyID:       member.FamilyID,
		CreatedAt:      member.CreatedAt,
	}
	if member.BirthDate != nil {
		resp.BirthDate = member.BirthDate.Format(birthDateLayout)
	}

	return resp
}

func (req *memberRequest) toInput() (*usecase.MemberInput, error) {
	input := &usecase.MemberInput{
		Name:  req.Name,
		CPF:   req.CPF,
		Phone: req.Phone,
		Email: req.Email,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "data_nascimento must be YYYY-MM-DD")
		}
		input.BirthDate = &birthDate
	}

	if req.FamilyID != nil && *req.FamilyID != "" {
		familyID, err := uuid.Parse(*req.FamilyID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "familia_id must be a uuid")
		}
		input.FamilyID = &familyID
	}

	return input, nil
}

// List returns the members visible to the request tenant.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]memberResponse, 0, len(members))
	for _, member := range members {
		resp = append(resp, toMemberResponse(member))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single member.
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	member, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toMemberResponse(member))
}

// Create stores a new member under the request tenant.
func (h *MemberHandler) Create(c echo.Context) error {
	var req memberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	member, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toMemberResponse(member))
}

// Update modifies an existing member.
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req memberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	member, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toMemberResponse(member))
}

// Delete removes a member.
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
