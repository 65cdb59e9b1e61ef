package auth

import (
	"testing"

	"ecclesia/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, hasher.Check("secret123", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("secret123", "not-a-bcrypt-hash"))
}
