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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoleServiceForTest(t *testing.T) (usecase.RoleUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRoleRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRoleService(RoleServiceParams{
		TxManager: txManager,
		RoleRepo:  roleRepo,
		Logger:    logger,
	})

	return svc, txManager, roleRepo
}

func TestRoleService_Create_Success(t *testing.T) {
	svc, _, roleRepo := newRoleServiceForTest(t)

	ctx := context.Background()
	perms := []entity.Permission{{Resource: "members", Action: "read", Scope: entity.ScopeCongregation}}

	roleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Role")).
		RunAndReturn(func(_ context.Context, role *entity.Role) error {
			role.ID = uuid.New()
			return nil
		})

	role, err := svc.Create(ctx, &usecase.CreateRoleInput{Name: "secretario", Permissions: perms})

	require.NoError(t, err)
	assert.Equal(t, "secretario", role.Name)
	assert.Equal(t, perms, role.Permissions)
	assert.NotEqual(t, uuid.Nil, role.ID)
}

func TestRoleService_Create_NameRequired(t *testing.T) {
	svc, _, _ := newRoleServiceForTest(t)

	_, err := svc.Create(context.Background(), &usecase.CreateRoleInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRoleService_Create_DuplicateName(t *testing.T) {
	svc, _, roleRepo := newRoleServiceForTest(t)

	ctx := context.Background()
	roleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Role")).Return(domainerrors.ErrRoleAlreadyExists)

	_, err := svc.Create(ctx, &usecase.CreateRoleInput{Name: "secretario"})

	assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadyExists)
}

func TestRoleService_AssignToAccount_Success(t *testing.T) {
	svc, txManager, _ := newRoleServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Roles: []string{"members:read"}}
	role := &entity.Role{ID: uuid.New(), Name: "secretario"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)
			txRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			mockFactory.EXPECT().RoleRepo().Return(txRoleRepo)

			txRoleRepo.EXPECT().FindByName(ctx, "secretario").Return(role, nil)
			txAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			txAccountRepo.EXPECT().Update(ctx, account).Return(nil)

			return fn(mockFactory)
		})

	updated, err := svc.AssignToAccount(ctx, accountID, "secretario")

	require.NoError(t, err)
	assert.Equal(t, []string{"members:read", "secretario"}, updated.Roles)
}

func TestRoleService_AssignToAccount_RoleMustExist(t *testing.T) {
	svc, txManager, _ := newRoleServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)
			txRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			mockFactory.EXPECT().RoleRepo().Return(txRoleRepo)

			txRoleRepo.EXPECT().FindByName(ctx, "ghost").Return(nil, repository.ErrRoleNotFound)

			return fn(mockFactory)
		})

	_, err := svc.AssignToAccount(ctx, accountID, "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRoleService_AssignToAccount_AlreadyAssignedIsNoOp(t *testing.T) {
	svc, txManager, _ := newRoleServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Roles: []string{"secretario"}}
	role := &entity.Role{ID: uuid.New(), Name: "secretario"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)
			txRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			mockFactory.EXPECT().RoleRepo().Return(txRoleRepo)

			txRoleRepo.EXPECT().FindByName(ctx, "secretario").Return(role, nil)
			txAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			// No Update expected.

			return fn(mockFactory)
		})

	updated, err := svc.AssignToAccount(ctx, accountID, "secretario")

	require.NoError(t, err)
	assert.Equal(t, []string{"secretario"}, updated.Roles)
}

func TestRoleService_RevokeFromAccount_Success(t *testing.T) {
	svc, txManager, _ := newRoleServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Roles: []string{"secretario", "members:read"}}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			txAccountRepo.EXPECT().Update(ctx, account).Return(nil)

			return fn(mockFactory)
		})

	updated, err := svc.RevokeFromAccount(ctx, accountID, "secretario")

	require.NoError(t, err)
	assert.Equal(t, []string{"members:read"}, updated.Roles)
}

func TestRoleService_RevokeFromAccount_AbsentRoleIsNoOp(t *testing.T) {
	svc, txManager, _ := newRoleServiceForTest(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Roles: []string{"members:read"}}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	updated, err := svc.RevokeFromAccount(ctx, accountID, "secretario")

	require.NoError(t, err)
	assert.Equal(t, []string{"members:read"}, updated.Roles)
}
