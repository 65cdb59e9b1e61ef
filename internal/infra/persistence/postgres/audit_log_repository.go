package postgres

import (
	"context"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const auditListLimit = 200

// auditLogRepository implements the domain.AuditLogRepository interface using GORM.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create appends one audit record.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List retrieves audit records matching the filter, newest first.
func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if filter.ResourceType != "" {
		query = query.Where("recurso = ?", filter.ResourceType)
	}
	if filter.AccountID != nil {
		query = query.Where("usuario_id = ?", *filter.AccountID)
	}
	if filter.CongregationID != nil {
		query = query.Where("congregacao_id = ?", *filter.CongregationID)
	}

	var logModels []*model.AuditLogModel
	if err := query.
		Order("created_at DESC").
		Limit(auditListLimit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toAuditLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLog entity.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLog {
	if data == nil {
		return nil
	}

	return &entity.AuditLog{
		ID:             data.ID,
		AccountID:      data.AccountID,
		CongregationID: data.CongregationID,
		Action:         data.Action,
		ResourceType:   data.Resource,
		ResourceID:     data.ResourceID,
		OldValues:      data.OldValues.Raw,
		NewValues:      data.NewValues.Raw,
		IPAddress:      data.IPAddress,
		UserAgent:      data.UserAgent,
		SessionID:      data.SessionID,
		Success:        data.Success,
		ErrorMessage:   data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		CongregationID: data.CongregationID,
		Action:         data.Action,
		Resource:       data.ResourceType,
		ResourceID:     data.ResourceID,
		OldValues:      model.SnapshotJSON{Raw: data.OldValues},
		NewValues:      model.SnapshotJSON{Raw: data.NewValues},
		IPAddress:      data.IPAddress,
		UserAgent:      data.UserAgent,
		SessionID:      data.SessionID,
		Success:        data.Success,
		ErrorMessage:   data.ErrorMessage,
	}
}
