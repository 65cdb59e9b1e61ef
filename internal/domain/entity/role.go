package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named, reusable bundle of permissions assignable to an Account by name.
type Role struct {
	ID          uuid.UUID
	Name        string // Unique role name. Accounts reference roles by this string.
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
