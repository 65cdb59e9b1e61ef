// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ecclesia/config"
	"ecclesia/internal/domain/service"
)

// refreshSecretBytes is the entropy of a raw refresh secret. 64 bytes gives
// 512 bits of randomness, far beyond the 256-bit floor the design requires.
const refreshSecretBytes = 64

const tokenTypeAccess = "access"

// jwtService is a concrete implementation of the TokenService interface.
// Access tokens are HS256 JWTs; refresh tokens are opaque random secrets
// of which only a SHA-256 digest is ever stored.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

// NewJWTService is the constructor for jwtService. When no access secret is
// configured it falls back to the weak development default and logs loudly.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.SecretKey.Access
	if secret == "" {
		secret = config.DevAccessSecret
		logger.Warn("No access token secret configured, using development fallback. Do not run this in production.")
	}

	accessTTL := time.Hour
	refreshTTL := 30 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL != 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL != 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret: []byte(secret),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

// GenerateAccessToken creates a signed, time-boxed token embedding the account id and role hints.
func (s *jwtService) GenerateAccessToken(accountID uuid.UUID, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": tokenTypeAccess,
	}
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected access token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("access token missing subject")
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}

	var roles []string
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}
	}

	return &service.Claims{AccountID: accountID, Roles: roles}, nil
}

// IssueRefreshToken produces a cryptographically random opaque secret, hex encoded.
func (s *jwtService) IssueRefreshToken() (string, error) {
	buf := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate refresh secret")
	}

	return hex.EncodeToString(buf), nil
}

// HashRefreshToken returns the SHA-256 hex digest used to persist and look up sessions.
func (s *jwtService) HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured refresh window.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}
