package repository

import (
	"context"
	"errors"
	"time"

	"ecclesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session row matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence for refresh-token sessions.
// Sessions are append-only history: rows are rotated or revoked, never deleted.
type SessionRepository interface {
	// Create persists a new session at login time.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the session matching a refresh-token hash,
	// regardless of revoked or expired state. Callers decide usability.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Rotate replaces the stored hash and expiry of a session in place,
	// conditional on the row still carrying oldHash. It returns
	// ErrSessionNotFound when no row matched, which is how a concurrent
	// refresh that lost the race observes the already-rotated hash.
	Rotate(ctx context.Context, id uuid.UUID, oldHash, newHash string, expiresAt time.Time) error

	// Revoke marks a session revoked. Revoking an already-revoked session is a no-op.
	Revoke(ctx context.Context, id uuid.UUID) error
}
