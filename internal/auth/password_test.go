package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "secret1pass"

	hash, err := HashPassword(password, 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, CheckPassword(password, hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
	assert.False(t, CheckPassword(password, "not-a-bcrypt-hash"))
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	password := "secret1pass"

	first, err := HashPassword(password, 4)
	require.NoError(t, err)
	second, err := HashPassword(password, 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same plaintext must differ")
	assert.True(t, CheckPassword(password, first))
	assert.True(t, CheckPassword(password, second))
}

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("secret1pass", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword("secret1pass", hash))
}
