package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	tok, err := NewAccessToken(secret, "user-1", "alice", "CUSTOMER")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "alice", claims["name"])
	assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestNewAccessTokenExpiresIn24Hours(t *testing.T) {
	tok, err := NewAccessToken("secret", "user-1", "alice", "ADMIN")
	require.NoError(t, err)

	want := time.Now().UTC().Add(24 * time.Hour)
	assert.WithinDuration(t, want, tok.Exp, time.Minute)
}

func TestNewAccessTokenRejectedWithWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("right-secret", "user-1", "alice", "CUSTOMER")
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
