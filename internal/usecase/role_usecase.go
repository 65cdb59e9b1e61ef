package usecase

import (
	"context"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRoleInput defines a new role and its permission grants.
type CreateRoleInput struct {
	Name        string
	Permissions []entity.Permission
}

// RoleUsecase defines role administration operations.
type RoleUsecase interface {
	Create(ctx context.Context, input *CreateRoleInput) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)

	// AssignToAccount attaches a role name to an account. The role must exist.
	AssignToAccount(ctx context.Context, accountID uuid.UUID, roleName string) (*entity.Account, error)

	// RevokeFromAccount detaches a role name from an account. Revoking a name
	// the account does not carry is a no-op.
	RevokeFromAccount(ctx context.Context, accountID uuid.UUID, roleName string) (*entity.Account, error)
}
