package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit action names recorded for mutating operations.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionImport = "IMPORT"
)

// AuditLog is one append-only record of a security-relevant action.
// Old/new values are opaque JSON snapshots taken by the caller.
type AuditLog struct {
	ID             uuid.UUID
	AccountID      *uuid.UUID
	CongregationID *uuid.UUID
	Action         string
	ResourceType   string
	ResourceID     *uuid.UUID
	OldValues      any
	NewValues      any
	IPAddress      string
	UserAgent      string
	SessionID      *uuid.UUID
	Success        bool
	ErrorMessage   string
	CreatedAt      time.Time
}
