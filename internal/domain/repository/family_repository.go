package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFamilyNotFound is returned when a family record is not found.
var ErrFamilyNotFound = errors.New("family not found")

// FamilyListFilter narrows and paginates family listings.
type FamilyListFilter struct {
	TenantID uuid.UUID // Families are always tenant-scoped.
	Search   string    // Optional substring match on the family name.
	Page     int
	Limit    int
}

// FamilyRepository defines persistence for family (household) records.
type FamilyRepository interface {
	ScopeFinder

	// FindByID retrieves a single family by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// List retrieves families matching the filter, with the total row count
	// before pagination.
	List(ctx context.Context, filter FamilyListFilter) ([]*entity.Family, int64, error)

	// Create persists a new family.
	Create(ctx context.Context, family *entity.Family) error

	// Update modifies an existing family.
	Update(ctx context.Context, family *entity.Family) error

	// Delete removes a family record.
	Delete(ctx context.Context, id uuid.UUID) error
}
