package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/metrics"
	"ecclesia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	auditRepo repository.AuditLogRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for auditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AuditRepo repository.AuditLogRepository
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends one audit entry. A failing write must never fail the
// operation being audited, so errors are logged and counted, not returned.
func (srv *auditService) Record(ctx context.Context, event *usecase.AuditEvent) {
	record := &entity.AuditLog{
		AccountID:      event.AccountID,
		CongregationID: event.CongregationID,
		Action:         event.Action,
		ResourceType:   event.ResourceType,
		ResourceID:     event.ResourceID,
		OldValues:      event.OldValues,
		NewValues:      event.NewValues,
		Success:        event.Success,
		ErrorMessage:   event.ErrorMessage,
	}

	if err := srv.auditRepo.Create(ctx, record); err != nil {
		metrics.ObserveAuditWriteFailure()
		srv.log(ctx).Error("Failed to write audit record",
			slog.String("action", event.Action),
			slog.String("resourceType", event.ResourceType),
			slog.Any("error", err))
	}
}

// List retrieves audit records matching the filter, newest first.
func (srv *auditService) List(ctx context.Context, input *usecase.AuditListInput) ([]*entity.AuditLog, error) {
	logs, err := srv.auditRepo.List(ctx, repository.AuditLogFilter{
		ResourceType:   input.ResourceType,
		AccountID:      input.AccountID,
		CongregationID: input.CongregationID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return logs, nil
}
