package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	AccountID uuid.UUID
	Roles     []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating credentials:
// signed, short-lived access tokens and opaque, rotating refresh secrets.
// Persisting the session row that backs a refresh secret is the caller's job.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-boxed token embedding the
	// account id and role hints.
	GenerateAccessToken(accountID uuid.UUID, roles []string) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// IssueRefreshToken produces a cryptographically random opaque secret.
	// The raw value is returned exactly once and is never persisted.
	IssueRefreshToken() (string, error)

	// HashRefreshToken is the deterministic one-way transform used both to
	// persist and to look up sessions by presented refresh token.
	HashRefreshToken(raw string) string

	// RefreshTokenDuration returns the refresh window applied at issuance and rotation.
	RefreshTokenDuration() time.Duration
}
