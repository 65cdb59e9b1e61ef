package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	logger    *slog.Logger
}

// RoleServiceParams holds dependencies for roleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.RoleRepository
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		roleRepo:  params.RoleRepo,
		logger:    params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new role with its permission list. Duplicate names
// surface as a conflict.
func (srv *roleService) Create(ctx context.Context, input *usecase.CreateRoleInput) (*entity.Role, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "role name is required")
	}

	role := &entity.Role{
		Name:        input.Name,
		Permissions: input.Permissions,
	}

	if err := srv.roleRepo.Create(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	srv.log(ctx).Info("Role created", slog.String("role", role.Name))

	return role, nil
}

// List retrieves all roles.
func (srv *roleService) List(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// AssignToAccount attaches a role name to an account. Both the account and
// the role must exist; an already-assigned name is a no-op. The read and
// write run in one transaction so concurrent assignments do not clobber
// each other's role sets.
func (srv *roleService) AssignToAccount(ctx context.Context, accountID uuid.UUID, roleName string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		roleRepo := repoFactory.RoleRepo()

		if _, err := roleRepo.FindByName(ctx, roleName); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "role not found")
			}

			return errors.Wrap(err, "failed to find role")
		}

		var findErr error
		account, findErr = accountRepo.FindByID(ctx, accountID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account not found")
			}

			return errors.Wrap(findErr, "failed to find account")
		}

		if account.HasRole(roleName) {
			return nil
		}

		account.Roles = append(account.Roles, roleName)

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Role assignment failed", slog.Any("accountID", accountID), slog.String("role", roleName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role assignment transaction")
	}

	srv.log(ctx).Info("Role assigned", slog.Any("accountID", accountID), slog.String("role", roleName))

	return account, nil
}

// RevokeFromAccount detaches a role name from an account. Revoking a name
// the account does not carry succeeds without change.
func (srv *roleService) RevokeFromAccount(ctx context.Context, accountID uuid.UUID, roleName string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByID(ctx, accountID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account not found")
			}

			return errors.Wrap(findErr, "failed to find account")
		}

		if !account.HasRole(roleName) {
			return nil
		}

		kept := make([]string, 0, len(account.Roles))
		for _, name := range account.Roles {
			if name != roleName {
				kept = append(kept, name)
			}
		}
		account.Roles = kept

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Role revocation failed", slog.Any("accountID", accountID), slog.String("role", roleName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role revocation transaction")
	}

	srv.log(ctx).Info("Role revoked", slog.Any("accountID", accountID), slog.String("role", roleName))

	return account, nil
}
