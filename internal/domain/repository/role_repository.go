package repository

import (
	"context"
	"errors"

	"ecclesia/internal/domain/entity"
)

// ErrRoleNotFound is returned when a role record is not found by name.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines persistence for role records.
type RoleRepository interface {
	// Create persists a new role with its permission list.
	Create(ctx context.Context, role *entity.Role) error

	// FindByName retrieves a single role by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// FindByNames retrieves the roles whose names appear in the given set.
	// Names with no matching record are silently omitted from the result.
	FindByNames(ctx context.Context, names []string) ([]*entity.Role, error)

	// List retrieves all roles.
	List(ctx context.Context) ([]*entity.Role, error)
}
