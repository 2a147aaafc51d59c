package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "password1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash, got %q", hash)

	assert.True(t, VerifyPassword(hash, "password1"))
	assert.False(t, VerifyPassword(hash, "wrongpass"))
	assert.False(t, VerifyPassword("", "password1"))
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	// A misconfigured BCRYPT_COST must not break registration; the hash is
	// produced at the library default instead.
	hash, err := HashPassword("password1", 99)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "password1"))
}
