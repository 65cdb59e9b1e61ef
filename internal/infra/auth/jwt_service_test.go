package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"ecclesia/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServiceForTest(t *testing.T, accessTTL time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, ok := NewJWTService(cfg, logger).(*jwtService)
	require.True(t, ok)

	return svc
}

func TestJWTService_MissingAuthSectionFallsBackToDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, ok := NewJWTService(cfg, logger).(*jwtService)
	require.True(t, ok)

	assert.Equal(t, time.Hour, svc.accessTTL)
	assert.Equal(t, 30*24*time.Hour, svc.RefreshTokenDuration())

	tokenString, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(tokenString)
	assert.NoError(t, err)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTokenServiceForTest(t, time.Hour)

	accountID := uuid.New()
	roles := []string{"admin", "members:read"}

	tokenString, err := svc.GenerateAccessToken(accountID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc := newTokenServiceForTest(t, -time.Minute)

	tokenString, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	issuer := newTokenServiceForTest(t, time.Hour)

	tokenString, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	verifier := newTokenServiceForTest(t, time.Hour)
	verifier.accessSecret = []byte("another-secret")

	_, err = verifier.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	svc := newTokenServiceForTest(t, time.Hour)

	_, err := svc.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_IssueRefreshToken_UniqueAndOpaque(t *testing.T) {
	svc := newTokenServiceForTest(t, time.Hour)

	first, err := svc.IssueRefreshToken()
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, refreshSecretBytes*2) // hex encoding doubles the length
}

func TestJWTService_HashRefreshToken_Deterministic(t *testing.T) {
	svc := newTokenServiceForTest(t, time.Hour)

	raw, err := svc.IssueRefreshToken()
	require.NoError(t, err)

	hash := svc.HashRefreshToken(raw)
	assert.Equal(t, hash, svc.HashRefreshToken(raw))
	assert.NotEqual(t, raw, hash)
	assert.Len(t, hash, 64) // SHA-256 hex digest
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTokenServiceForTest(t, time.Hour)

	assert.Equal(t, 30*24*time.Hour, svc.RefreshTokenDuration())
}
