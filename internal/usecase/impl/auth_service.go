// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecclesia/internal/delivery/context"
	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/domain/service"
	"ecclesia/internal/infra/metrics"
	"ecclesia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking email uniqueness.
// The existence check and the insert run in one transaction; the unique index
// on email backstops a concurrent duplicate register.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Roles:        []string{},
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		return accountRepo.Create(ctx, newAccount)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// Login verifies credentials and opens a new refresh-token session.
// An unknown email and a wrong password produce the same error so the
// response never reveals which half failed. The active flag is read but
// deliberately not enforced, matching upstream behavior.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		metrics.ObserveLogin("denied")
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// bcrypt check runs outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		metrics.ObserveLogin("denied")
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokens.GenerateAccessToken(account.ID, account.Roles)
	if err != nil {
		metrics.ObserveLogin("denied")

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokens.IssueRefreshToken()
	if err != nil {
		metrics.ObserveLogin("denied")

		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	session := &entity.Session{
		AccountID:        account.ID,
		RefreshTokenHash: srv.tokens.HashRefreshToken(refreshToken),
		ExpiresAt:        time.Now().Add(srv.tokens.RefreshTokenDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		metrics.ObserveLogin("denied")

		return nil, errors.Wrap(err, "failed to create session during login")
	}

	metrics.ObserveLogin("ok")
	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh rotates a refresh-token session in place and mints a new access
// token. Any defect in the presented token, a missing session, a revoked or
// expired one, or losing a concurrent rotation race, collapses into the same
// invalid-refresh-token error.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	oldHash := srv.tokens.HashRefreshToken(input.RefreshToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, oldHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token unknown")
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	if !session.Usable(time.Now()) {
		srv.log(ctx).Warn("Refresh with unusable session", slog.Any("sessionID", session.ID), slog.Bool("revoked", session.Revoked))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session revoked or expired")
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session account")
	}

	newRefreshToken, err := srv.tokens.IssueRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue replacement refresh token")
	}

	newHash := srv.tokens.HashRefreshToken(newRefreshToken)
	expiresAt := time.Now().Add(srv.tokens.RefreshTokenDuration())

	// The conditional update is the single-use guarantee: of two concurrent
	// refreshes presenting the same token, exactly one matches the stored hash.
	if err := srv.sessionRepo.Rotate(ctx, session.ID, oldHash, newHash, expiresAt); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Refresh lost rotation race", slog.Any("sessionID", session.ID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already rotated")
		}

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	accessToken, err := srv.tokens.GenerateAccessToken(account.ID, account.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Token refresh completed", slog.Any("sessionID", session.ID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes the session holding the presented refresh token. An unknown
// token and an already-revoked session both succeed, so repeated logouts are
// harmless.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting logout")

	tokenHash := srv.tokens.HashRefreshToken(input.RefreshToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find session for logout")
	}

	if session.Revoked {
		return nil
	}

	if err := srv.sessionRepo.Revoke(ctx, session.ID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Debug("Logout completed", slog.Any("sessionID", session.ID))

	return nil
}
