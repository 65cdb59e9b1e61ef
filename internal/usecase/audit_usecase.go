package usecase

import (
	"context"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditEvent describes one security-relevant action to record.
type AuditEvent struct {
	AccountID      *uuid.UUID
	CongregationID *uuid.UUID
	Action         string
	ResourceType   string
	ResourceID     *uuid.UUID
	OldValues      any
	NewValues      any
	Success        bool
	ErrorMessage   string
}

// AuditListInput filters audit-log listings.
type AuditListInput struct {
	ResourceType   string
	AccountID      *uuid.UUID
	CongregationID *uuid.UUID
}

// AuditUsecase records and queries the append-only audit trail.
type AuditUsecase interface {
	// Record appends one audit entry. It never returns an error: storage
	// failures are logged and counted, but must not fail the audited operation.
	Record(ctx context.Context, event *AuditEvent)

	List(ctx context.Context, input *AuditListInput) ([]*entity.AuditLog, error)
}
