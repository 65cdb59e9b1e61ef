package postgres

import (
	"context"
	"time"

	"ecclesia/internal/domain/entity"
	domainerrors "ecclesia/internal/domain/errors"
	"ecclesia/internal/domain/repository"
	"ecclesia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session at login time.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves the session matching a refresh-token hash,
// regardless of revoked or expired state. Usability is the caller's call.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("refresh_token_hash = ?", tokenHash).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return toSessionDomain(&sessionM), nil
}

// Rotate replaces the stored hash and expiry in place, conditional on the row
// still carrying oldHash. A concurrent refresh that already rotated the row
// makes the condition miss, which surfaces here as ErrSessionNotFound.
func (repo *sessionRepository) Rotate(ctx context.Context, id uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("session_id = ? AND refresh_token_hash = ? AND revoked = false", id, oldHash).
		Updates(map[string]any{
			"refresh_token_hash": newHash,
			"expires_at":         expiresAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			// Another session already holds the new hash. Astronomically unlikely
			// with 64 random bytes, but surface it rather than swallow it.
			return domainerrors.NewDatabaseExecuteError(result.Error, "refresh token hash collision")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Revoke marks a session revoked. Revoking an already-revoked session succeeds.
func (repo *sessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("session_id = ?", id).
		Update("revoked", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:               data.ID,
		AccountID:        data.AccountID,
		RefreshTokenHash: data.TokenHash,
		ExpiresAt:        data.ExpiresAt,
		Revoked:          data.Revoked,
		CreatedAt:        data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.RefreshTokenHash,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
	}
}
