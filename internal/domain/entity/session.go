package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one outstanding refresh-token grant for an Account.
// Rows are never physically deleted: a refresh rotates the hash in place,
// a logout flips Revoked, and expiry is detected lazily at validation time.
type Session struct {
	ID               uuid.UUID // The unique ID for this session row.
	AccountID        uuid.UUID // The owning account.
	RefreshTokenHash string    // SHA-256 hex digest of the raw refresh secret. The raw value is never persisted.
	ExpiresAt        time.Time // End of the current refresh window.
	Revoked          bool      // Terminal state set by logout.
	CreatedAt        time.Time
}

// Usable reports whether the session can still mint access tokens at the given instant.
func (s *Session) Usable(now time.Time) bool {
	return !s.Revoked && s.ExpiresAt.After(now)
}
