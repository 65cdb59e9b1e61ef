package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/metrics"
	"ecclesia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ScopeFinders maps a resource name ("members", "families", ...) to the
// repository able to report a record's tenant and owner. Resources without
// an entry cannot satisfy own- or congregation-scoped grants on a target.
type ScopeFinders map[string]repository.ScopeFinder

// authorizationService implements the AuthorizationUsecase interface.
// It is the single place permission decisions are made.
type authorizationService struct {
	accountRepo  repository.AccountRepository
	roleRepo     repository.RoleRepository
	scopeFinders ScopeFinders
	logger       *slog.Logger
}

// AuthorizationServiceParams holds dependencies for authorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	RoleRepo     repository.RoleRepository
	ScopeFinders ScopeFinders
	Logger       *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		accountRepo:  params.AccountRepo,
		roleRepo:     params.RoleRepo,
		scopeFinders: params.ScopeFinders,
		logger:       params.Logger,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize answers one permission question. The decision order is fixed:
// anonymous fails first, then the account is reloaded so stale tokens never
// grant revoked access, then admin bypasses everything, then granted
// permissions are matched and their scopes checked against the target.
// A named target that does not exist wins over a scope denial, so callers
// see 404 rather than 403 for missing records.
func (srv *authorizationService) Authorize(ctx context.Context, input *usecase.AuthorizeInput) error {
	if !input.HasIdentity {
		metrics.ObserveAuthzDecision("unauthenticated")

		return errors.Wrap(domainerrors.ErrUnauthenticated, "anonymous request")
	}

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			metrics.ObserveAuthzDecision("unauthenticated")

			return errors.Wrap(domainerrors.ErrUnauthenticated, "token account no longer exists")
		}

		return errors.Wrap(err, "failed to load account for authorization")
	}

	if account.HasRole(entity.RoleAdmin) {
		metrics.ObserveAuthzDecision("allow")

		return nil
	}

	granted, err := srv.collectPermissions(ctx, account)
	if err != nil {
		return err
	}

	var matched []entity.Permission
	for _, perm := range granted {
		if perm.Matches(input.Resource, input.Action) {
			matched = append(matched, perm)
		}
	}
	if len(matched) == 0 {
		metrics.ObserveAuthzDecision("forbidden")
		srv.log(ctx).Debug("Authorization denied, no matching grant",
			slog.Any("accountID", account.ID),
			slog.String("resource", input.Resource),
			slog.String("action", input.Action))

		return errors.Wrap(domainerrors.ErrForbidden, "no matching permission")
	}

	// The target's scope is loaded at most once and shared across grants.
	var targetScope *entity.ResourceScope
	targetLoaded := false

	for _, perm := range matched {
		switch perm.EffectiveScope() {
		case entity.ScopeAll:
			metrics.ObserveAuthzDecision("allow")

			return nil

		case entity.ScopeCongregation:
			if input.TargetID == nil {
				// Without a target record only create can be decided: the new
				// record lands in the request tenant. Every other action
				// needs an id to compare tenants against.
				if input.Action == "create" && input.TenantID != nil {
					metrics.ObserveAuthzDecision("allow")

					return nil
				}

				continue
			}

			scope, err := srv.loadTargetScope(ctx, input, &targetScope, &targetLoaded)
			if err != nil {
				return err
			}
			if scope == nil {
				continue
			}
			if input.TenantID != nil && scope.TenantID != nil && *scope.TenantID == *input.TenantID {
				metrics.ObserveAuthzDecision("allow")

				return nil
			}

		case entity.ScopeOwn:
			if input.TargetID == nil {
				// Ownership is undefined before the record exists.
				continue
			}

			scope, err := srv.loadTargetScope(ctx, input, &targetScope, &targetLoaded)
			if err != nil {
				return err
			}
			if scope == nil {
				continue
			}
			if scope.OwnerID != nil && *scope.OwnerID == input.AccountID {
				metrics.ObserveAuthzDecision("allow")

				return nil
			}
		}
	}

	metrics.ObserveAuthzDecision("forbidden")
	srv.log(ctx).Debug("Authorization denied by scope",
		slog.Any("accountID", account.ID),
		slog.String("resource", input.Resource),
		slog.String("action", input.Action))

	return errors.Wrap(domainerrors.ErrForbidden, "scope check failed")
}

// collectPermissions merges the permissions of the account's stored roles
// with the ones synthesized from legacy colon-delimited role names. Role
// names with no stored record contribute only their parsed form.
func (srv *authorizationService) collectPermissions(ctx context.Context, account *entity.Account) ([]entity.Permission, error) {
	roles, err := srv.roleRepo.FindByNames(ctx, account.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles for authorization")
	}

	var granted []entity.Permission
	for _, role := range roles {
		granted = append(granted, role.Permissions...)
	}
	granted = append(granted, entity.PermissionsFromRoleNames(account.Roles)...)

	return granted, nil
}

// loadTargetScope resolves the target record's tenant/owner pair once.
// A missing record short-circuits the whole evaluation with not-found; a
// resource type without a registered finder yields nil, which callers treat
// as "this grant cannot decide".
func (srv *authorizationService) loadTargetScope(ctx context.Context, input *usecase.AuthorizeInput, cache **entity.ResourceScope, loaded *bool) (*entity.ResourceScope, error) {
	if *loaded {
		return *cache, nil
	}

	finder, ok := srv.scopeFinders[input.Resource]
	if !ok {
		*loaded = true

		return nil, nil
	}

	scope, err := finder.FindResourceScope(ctx, *input.TargetID)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			metrics.ObserveAuthzDecision("not_found")

			return nil, errors.Wrap(domainerrors.ErrNotFound, "authorization target not found")
		}

		return nil, errors.Wrap(err, "failed to load target scope")
	}

	*cache = scope
	*loaded = true

	return scope, nil
}
