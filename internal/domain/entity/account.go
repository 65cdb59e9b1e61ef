// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a human identity able to authenticate against the system.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name ("nome" on the wire).
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash of the password. Never leaves the persistence/usecase boundary.
	Roles        []string  // Assigned role names. Denormalized: a name may not resolve to a stored Role.
	Active       bool      // Soft-disable flag. Currently informational only; login does not check it.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the account carries the given role name.
func (a *Account) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r == name {
			return true
		}
	}

	return false
}
