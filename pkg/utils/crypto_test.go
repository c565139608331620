package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	assert.NoError(t, err)
	assert.NotEmpty(t, salt1)

	salt2, err := GenerateSalt()
	assert.NoError(t, err)
	assert.NotEqual(t, salt1, salt2)
}

func TestHashPassword(t *testing.T) {
	salt, _ := GenerateSalt()
	hash := HashPassword("my-secure-password", salt)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "my-secure-password", hash)

	// Deterministic for the same salt
	assert.Equal(t, hash, HashPassword("my-secure-password", salt))

	// Different salt, different hash
	otherSalt, _ := GenerateSalt()
	assert.NotEqual(t, hash, HashPassword("my-secure-password", otherSalt))
}

func TestCheckPasswordHash(t *testing.T) {
	salt, _ := GenerateSalt()
	hash := HashPassword("my-secure-password", salt)

	assert.True(t, CheckPasswordHash("my-secure-password", salt, hash))
	assert.False(t, CheckPasswordHash("wrong-password", salt, hash))
	assert.False(t, CheckPasswordHash("my-secure-password", "wrong-salt", hash))
}
