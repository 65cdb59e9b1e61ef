package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	mockRepo "ecclesia/internal/mocks/repository"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorizationServiceForTest(t *testing.T, finders ScopeFinders) (usecase.AuthorizationUsecase, *mockRepo.MockAccountRepository, *mockRepo.MockRoleRepository) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if finders == nil {
		finders = ScopeFinders{}
	}

	svc := NewAuthorizationService(AuthorizationServiceParams{
		AccountRepo:  accountRepo,
		RoleRepo:     roleRepo,
		ScopeFinders: finders,
		Logger:       logger,
	})

	return svc, accountRepo, roleRepo
}

func TestAuthorizationService_AnonymousIsUnauthenticated(t *testing.T) {
	svc, _, _ := newAuthorizationServiceForTest(t, nil)

	err := svc.Authorize(context.Background(), &usecase.AuthorizeInput{
		HasIdentity: false,
		Resource:    "members",
		Action:      "read",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthorizationService_DeletedAccountIsUnauthenticated(t *testing.T) {
	svc, accountRepo, _ := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	accountID := uuid.New()
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   accountID,
		Resource:    "members",
		Action:      "read",
	})

	// A valid token whose account was deleted must not pass; the account is
	// reloaded on every decision.
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthorizationService_AdminBypassesEverything(t *testing.T) {
	svc, accountRepo, _ := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"admin"}}
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	targetID := uuid.New()
	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		Resource:    "congregations",
		Action:      "delete",
		TargetID:    &targetID,
	})

	require.NoError(t, err)
}

func TestAuthorizationService_NoMatchingGrantIsForbidden(t *testing.T) {
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"members:read"}}
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		Resource:    "members",
		Action:      "delete",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorizationService_WildcardGrantAllows(t *testing.T) {
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"gestor"}}
	role := &entity.Role{
		ID:          uuid.New(),
		Name:        "gestor",
		Permissions: []entity.Permission{{Resource: "*", Action: "*", Scope: entity.ScopeAll}},
	}

	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return([]*entity.Role{role}, nil)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		Resource:    "families",
		Action:      "update",
	})

	require.NoError(t, err)
}

func TestAuthorizationService_LegacyColonRoleNameGrants(t *testing.T) {
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	// No stored Role record exists for the name; the grant comes entirely
	// from parsing "members:read".
	account := &entity.Account{ID: uuid.New(), Roles: []string{"members:read"}}
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		Resource:    "members",
		Action:      "read",
	})

	require.NoError(t, err)
}

func TestAuthorizationService_CongregationScope(t *testing.T) {
	tenantID := uuid.New()
	otherTenantID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name        string
		action      string
		tenantID    *uuid.UUID
		targetID    *uuid.UUID
		scopeTenant *uuid.UUID
		wantErr     error
	}{
		{
			name:        "target in request tenant",
			action:      "read",
			tenantID:    &tenantID,
			targetID:    &targetID,
			scopeTenant: &tenantID,
		},
		{
			name:        "target in another tenant",
			action:      "read",
			tenantID:    &tenantID,
			targetID:    &targetID,
			scopeTenant: &otherTenantID,
			wantErr:     domainerrors.ErrForbidden,
		},
		{
			name:     "create inside tenant needs no target",
			action:   "create",
			tenantID: &tenantID,
		},
		{
			name:    "create without tenant",
			action:  "create",
			wantErr: domainerrors.ErrForbidden,
		},
		{
			// Only create gets the no-target allowance; any other action
			// without a record id cannot prove the record's tenant.
			name:     "update without target",
			action:   "update",
			tenantID: &tenantID,
			wantErr:  domainerrors.ErrForbidden,
		},
		{
			name:     "read without target",
			action:   "read",
			tenantID: &tenantID,
			wantErr:  domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := mockRepo.NewMockScopeFinder(t)
			svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, ScopeFinders{"members": finder})

			ctx := context.Background()
			account := &entity.Account{ID: uuid.New(), Roles: []string{"secretario"}}
			role := &entity.Role{
				ID:   uuid.New(),
				Name: "secretario",
				Permissions: []entity.Permission{
					{Resource: "members", Action: "read", Scope: entity.ScopeCongregation},
					{Resource: "members", Action: "create", Scope: entity.ScopeCongregation},
					{Resource: "members", Action: "update", Scope: entity.ScopeCongregation},
				},
			}

			accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return([]*entity.Role{role}, nil)

			if tt.targetID != nil {
				finder.EXPECT().FindResourceScope(ctx, *tt.targetID).
					Return(&entity.ResourceScope{TenantID: tt.scopeTenant}, nil)
			}

			err := svc.Authorize(ctx, &usecase.AuthorizeInput{
				HasIdentity: true,
				AccountID:   account.ID,
				TenantID:    tt.tenantID,
				Resource:    "members",
				Action:      tt.action,
				TargetID:    tt.targetID,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorizationService_OwnScope(t *testing.T) {
	accountID := uuid.New()
	strangerID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name    string
		ownerID *uuid.UUID
		wantErr error
	}{
		{name: "caller owns the record", ownerID: &accountID},
		{name: "someone else owns the record", ownerID: &strangerID, wantErr: domainerrors.ErrForbidden},
		{name: "record has no owner", wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := mockRepo.NewMockScopeFinder(t)
			svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, ScopeFinders{"members": finder})

			ctx := context.Background()
			account := &entity.Account{ID: accountID, Roles: []string{"members:update:own"}}

			accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)
			finder.EXPECT().FindResourceScope(ctx, targetID).
				Return(&entity.ResourceScope{OwnerID: tt.ownerID}, nil)

			err := svc.Authorize(ctx, &usecase.AuthorizeInput{
				HasIdentity: true,
				AccountID:   accountID,
				Resource:    "members",
				Action:      "update",
				TargetID:    &targetID,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorizationService_OwnScopeWithoutTargetIsForbidden(t *testing.T) {
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, nil)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"members:create:own"}}
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		Resource:    "members",
		Action:      "create",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorizationService_MissingTargetWinsOverScopeDenial(t *testing.T) {
	finder := mockRepo.NewMockScopeFinder(t)
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, ScopeFinders{"members": finder})

	ctx := context.Background()
	tenantID := uuid.New()
	targetID := uuid.New()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"members:read:congregation"}}

	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)
	finder.EXPECT().FindResourceScope(ctx, targetID).Return(nil, repository.ErrResourceNotFound)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		TenantID:    &tenantID,
		Resource:    "members",
		Action:      "read",
		TargetID:    &targetID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthorizationService_UnregisteredResourceCannotDecide(t *testing.T) {
	// No finder registered for the resource: scoped grants cannot be checked
	// against a target and must deny rather than guess.
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, ScopeFinders{})

	ctx := context.Background()
	tenantID := uuid.New()
	targetID := uuid.New()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"reports:read:congregation"}}

	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   account.ID,
		TenantID:    &tenantID,
		Resource:    "reports",
		Action:      "read",
		TargetID:    &targetID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorizationService_TargetScopeLoadedOnce(t *testing.T) {
	finder := mockRepo.NewMockScopeFinder(t)
	svc, accountRepo, roleRepo := newAuthorizationServiceForTest(t, ScopeFinders{"members": finder})

	ctx := context.Background()
	accountID := uuid.New()
	targetID := uuid.New()
	// Two scoped grants match; the target's scope row must be fetched only once.
	account := &entity.Account{ID: accountID, Roles: []string{"members:read:congregation", "members:read:own"}}

	accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	roleRepo.EXPECT().FindByNames(ctx, account.Roles).Return(nil, nil)
	finder.EXPECT().FindResourceScope(ctx, targetID).
		Return(&entity.ResourceScope{OwnerID: &accountID}, nil).
		Once()

	err := svc.Authorize(ctx, &usecase.AuthorizeInput{
		HasIdentity: true,
		AccountID:   accountID,
		Resource:    "members",
		Action:      "read",
		TargetID:    &targetID,
	})

	require.NoError(t, err)
}
