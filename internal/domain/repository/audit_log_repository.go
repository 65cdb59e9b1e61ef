package repository

import (
	"context"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows audit-log listings.
type AuditLogFilter struct {
	ResourceType   string
	AccountID      *uuid.UUID
	CongregationID *uuid.UUID
}

// AuditLogRepository defines persistence for the append-only audit trail.
type AuditLogRepository interface {
	// Create appends one audit record.
	Create(ctx context.Context, log *entity.AuditLog) error

	// List retrieves audit records matching the filter, newest first.
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
