package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResourceNotFound is returned by scope lookups when the target record does not exist.
var ErrResourceNotFound = errors.New("resource not found")

// ScopeFinder is the narrow read the permission evaluator performs against a
// resource-type-specific repository: given a record id, report the record's
// tenant and owner. Repositories of scope-checked resources implement it.
type ScopeFinder interface {
	FindResourceScope(ctx context.Context, id uuid.UUID) (*entity.ResourceScope, error)
}
