package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is a congregation member record. CongregationID and CreatedBy are
// the two fields tenant isolation and own-scope authorization depend on.
type Member struct {
	ID             uuid.UUID
	Name           string // "nome" on the wire.
	CPF            string
	BirthDate      *time.Time
	Phone          string
	Email          string
	CongregationID *uuid.UUID // Tenant the record belongs to, nil in global mode.
	CreatedBy      *uuid.UUID // Account that created the record.
	FamilyID       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
