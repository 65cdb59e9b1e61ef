package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCongregationNotFound is returned when a congregation record is not found.
var ErrCongregationNotFound = errors.New("congregation not found")

// CongregationRepository defines persistence for congregation (tenant) records.
type CongregationRepository interface {
	ScopeFinder

	// FindByID retrieves a single congregation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Congregation, error)

	// List retrieves all congregations.
	List(ctx context.Context) ([]*entity.Congregation, error)

	// Create persists a new congregation.
	Create(ctx context.Context, congregation *entity.Congregation) error

	// Update modifies an existing congregation.
	Update(ctx context.Context, congregation *entity.Congregation) error

	// Delete removes a congregation record.
	Delete(ctx context.Context, id uuid.UUID) error
}
