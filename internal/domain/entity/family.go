package entity

import (
	"time"

	"github.com/google/uuid"
)

// Family groups members of a congregation under one household.
// Unlike Member, a family always belongs to a tenant.
type Family struct {
	ID             uuid.UUID
	CongregationID uuid.UUID
	Name           string // "nome_familia" on the wire.
	Address        string
	PostalCode     string
	City           string
	State          string
	Phone          string
	ResponsibleID  *uuid.UUID // Member responsible for the family.
	Notes          string
	Active         bool
	CreatedBy      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
