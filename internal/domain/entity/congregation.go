package entity

import (
	"time"

	"github.com/google/uuid"
)

// Congregation is the organizational partition (tenant) that scopes
// visibility of member and family records.
type Congregation struct {
	ID        uuid.UUID
	Name      string // "nome" on the wire.
	Address   string
	Phone     string
	Email     string
	Plan      string // Subscription plan, defaults to "basico".
	CreatedAt time.Time
	UpdatedAt time.Time
}
