package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test malformed hash
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashUniqueness(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "StrongPass123!"

	// Two hashes of the same password differ because of the random salt.
	hash1, err := hasher.Hash(password)
	assert.NoError(t, err)
	hash2, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check(password, hash1))
	assert.True(t, hasher.Check(password, hash2))
}
