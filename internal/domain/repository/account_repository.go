// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	// The lookup is a case-sensitive exact match.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account, including its role-name set.
	Update(ctx context.Context, account *entity.Account) error
}
