package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetTokenSecret("test-secret")

	token, err := GenerateToken("session-123", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	SetTokenSecret("test-secret")

	token, err := GenerateToken("session-123", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	SetTokenSecret("first")
	token, err := GenerateToken("session-123", time.Hour)
	require.NoError(t, err)

	SetTokenSecret("second")
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestEmptySubjectRejected(t *testing.T) {
	SetTokenSecret("test-secret")
	token, err := GenerateToken("", time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}
