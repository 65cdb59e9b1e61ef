package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	mockRepo "ecclesia/internal/mocks/repository"
	mockService "ecclesia/internal/mocks/service"
	"ecclesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockAccountRepository, *mockRepo.MockSessionRepository, *mockService.MockPasswordHasher, *mockService.MockTokenService) {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		Logger:      logger,
	})

	return svc, txManager, accountRepo, sessionRepo, hasher, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, txManager, _, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"}

	hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrAccountNotFound)
			txAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
				RunAndReturn(func(_ context.Context, account *entity.Account) error {
					account.ID = uuid.New()
					return nil
				})

			return fn(mockFactory)
		})

	output, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Ana", output.Account.Name)
	assert.Equal(t, "hashed", output.Account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
	assert.True(t, output.Account.Active)
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	svc, txManager, _, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}

	hasher.EXPECT().Hash("secret123").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(existing, nil)

			return fn(mockFactory)
		})

	_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, accountRepo, sessionRepo, hasher, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Roles: []string{"secretario"}}

	accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	hasher.EXPECT().Check("secret123", "hashed").Return(true)
	tokens.EXPECT().GenerateAccessToken(account.ID, account.Roles).Return("access-token", nil)
	tokens.EXPECT().IssueRefreshToken().Return("raw-refresh", nil)
	tokens.EXPECT().HashRefreshToken("raw-refresh").Return("refresh-hash")
	tokens.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, session *entity.Session) error {
			assert.Equal(t, account.ID, session.AccountID)
			assert.Equal(t, "refresh-hash", session.RefreshTokenHash)
			assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)
			return nil
		})

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "raw-refresh", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctx := context.Background()

	svcUnknown, _, accountRepo, _, _, _ := newAuthServiceForTest(t)
	accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, errUnknown := svcUnknown.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	svcWrongPass, _, accountRepo2, _, hasher, _ := newAuthServiceForTest(t)
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}
	accountRepo2.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, errWrongPass := svcWrongPass.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccountStillLogsIn(t *testing.T) {
	svc, _, accountRepo, sessionRepo, hasher, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Active: false}

	accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	hasher.EXPECT().Check("secret123", "hashed").Return(true)
	tokens.EXPECT().GenerateAccessToken(account.ID, mock.Anything).Return("access-token", nil)
	tokens.EXPECT().IssueRefreshToken().Return("raw-refresh", nil)
	tokens.EXPECT().HashRefreshToken("raw-refresh").Return("refresh-hash")
	tokens.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret123"})

	// The active flag is informational only; it does not block login.
	require.NoError(t, err)
}

func TestAuthService_Refresh_RotatesInPlace(t *testing.T) {
	svc, _, accountRepo, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Roles: []string{"tesoureiro"}}
	session := &entity.Session{
		ID:               uuid.New(),
		AccountID:        account.ID,
		RefreshTokenHash: "old-hash",
		ExpiresAt:        time.Now().Add(time.Hour),
	}

	tokens.EXPECT().HashRefreshToken("old-raw").Return("old-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "old-hash").Return(session, nil)
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	tokens.EXPECT().IssueRefreshToken().Return("new-raw", nil)
	tokens.EXPECT().HashRefreshToken("new-raw").Return("new-hash")
	tokens.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	sessionRepo.EXPECT().Rotate(ctx, session.ID, "old-hash", "new-hash", mock.AnythingOfType("time.Time")).Return(nil)
	tokens.EXPECT().GenerateAccessToken(account.ID, account.Roles).Return("new-access", nil)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-raw"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-raw", output.RefreshToken)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	svc, _, _, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	tokens.EXPECT().HashRefreshToken("bogus").Return("bogus-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "bogus-hash").Return(nil, repository.ErrSessionNotFound)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "bogus"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RevokedSession(t *testing.T) {
	svc, _, _, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}

	tokens.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(session, nil)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	svc, _, _, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	tokens.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(session, nil)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_LostRotationRace(t *testing.T) {
	svc, _, accountRepo, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New()}
	session := &entity.Session{
		ID:               uuid.New(),
		AccountID:        account.ID,
		RefreshTokenHash: "old-hash",
		ExpiresAt:        time.Now().Add(time.Hour),
	}

	tokens.EXPECT().HashRefreshToken("old-raw").Return("old-hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "old-hash").Return(session, nil)
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	tokens.EXPECT().IssueRefreshToken().Return("new-raw", nil)
	tokens.EXPECT().HashRefreshToken("new-raw").Return("new-hash")
	tokens.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	// A concurrent refresh already replaced the stored hash; the conditional
	// update matches zero rows.
	sessionRepo.EXPECT().Rotate(ctx, session.ID, "old-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(repository.ErrSessionNotFound)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-raw"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_AccountGone(t *testing.T) {
	svc, _, accountRepo, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokens.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(session, nil)
	accountRepo.EXPECT().FindByID(ctx, session.AccountID).Return(nil, repository.ErrAccountNotFound)

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	svc, _, _, sessionRepo, _, tokens := newAuthServiceForTest(t)

	ctx := context.Background()
	session := &entity.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	tokens.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(session, nil)
	sessionRepo.EXPECT().Revoke(ctx, session.ID).Return(nil)

	err := svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "raw"})

	require.NoError(t, err)
}

func TestAuthService_Logout_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	svcUnknown, _, _, sessionRepo, _, tokens := newAuthServiceForTest(t)
	tokens.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(nil, repository.ErrSessionNotFound)

	assert.NoError(t, svcUnknown.Logout(ctx, &usecase.LogoutInput{RefreshToken: "raw"}))

	svcRevoked, _, _, sessionRepo2, _, tokens2 := newAuthServiceForTest(t)
	revoked := &entity.Session{ID: uuid.New(), Revoked: true}
	tokens2.EXPECT().HashRefreshToken("raw").Return("hash")
	sessionRepo2.EXPECT().FindByTokenHash(ctx, "hash").Return(revoked, nil)

	assert.NoError(t, svcRevoked.Logout(ctx, &usecase.LogoutInput{RefreshToken: "raw"}))
}
