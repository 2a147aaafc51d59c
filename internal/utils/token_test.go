package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthToken_RoundTrip(t *testing.T) {
	tok, err := NewAuthToken("test-secret", "alice", 86400)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	// Expiry is 24h out, give or take scheduling slack.
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), tok.Exp, 5*time.Second)

	username, err := ParseAuthToken("test-secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestParseAuthToken_WrongSecret(t *testing.T) {
	tok, err := NewAuthToken("test-secret", "alice", 86400)
	require.NoError(t, err)

	_, err = ParseAuthToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuthToken_Expired(t *testing.T) {
	tok, err := NewAuthToken("test-secret", "alice", -10)
	require.NoError(t, err)

	_, err = ParseAuthToken("test-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuthToken_Garbage(t *testing.T) {
	_, err := ParseAuthToken("test-secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
