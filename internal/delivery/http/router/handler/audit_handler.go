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

// AuditHandler holds dependencies for audit-trail query handlers.
type AuditHandler struct {
	uc usecase.AuditUsecase
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

type auditLogResponse struct {
	ID             string  `json:"id"`
	AccountID      *string `json:"usuario_id,omitempty"`
	CongregationID *string `json:"congregacao_id,omitempty"`
	Action         string  `json:"acao"`
	ResourceType   string  `json:"recurso"`
	ResourceID     *string `json:"recurso_id,omitempty"`
	OldValues      any     `json:"valores_antigos,omitempty"`
	NewValues      any     `json:"valores_novos,omitempty"`
	Success        bool    `json:"success"`
	ErrorMessage   string  `json:"error_message,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func toAuditLogResponse(log *entity.AuditLog) auditLogResponse {
	resp := auditLogResponse{
		ID:           log.ID.String(),
		Action:       log.Action,
		ResourceType: log.ResourceType,
		OldValues:    log.OldValues,
		NewValues:    log.NewValues,
		Success:      log.Success,
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    log.CreatedAt.Format(time.RFC3339),
	}
	if log.AccountID != nil {
		id := log.AccountID.String()
		resp.AccountID = &id
	}
	if log.CongregationID != nil {
		id := log.CongregationID.String()
		resp.CongregationID = &id
	}
	if log.ResourceID != nil {
		id := log.ResourceID.String()
		resp.ResourceID = &id
	}

	return resp
}

// List returns recent audit entries, optionally filtered by resource type,
// acting account, or congregation.
func (h *AuditHandler) List(c echo.Context) error {
	input := usecase.AuditListInput{
		ResourceType: c.QueryParam("resource_type"),
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid user_id"))
		}
		input.AccountID = &id
	}
	if raw := c.QueryParam("congregacao_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid congregacao_id"))
		}
		input.CongregationID = &id
	}

	logs, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]auditLogResponse, 0, len(logs))
	for _, log := range logs {
		resp = append(resp, toAuditLogResponse(log))
	}

	return c.JSON(http.StatusOK, resp)
}
