package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.GenerateToken("patient@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient@example.com", claims.Email)
	assert.InDelta(t, time.Hour.Seconds(), float64(claims.ExpiresAt-claims.IssuedAt), 1)
}

func TestTokenManager_RejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).GenerateToken("a@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
	assert.False(t, IsTokenExpired(err))
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	token, err := NewTokenManager("secret", -time.Minute).GenerateToken("a@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).ValidateToken(token)
	require.Error(t, err)
	assert.True(t, IsTokenExpired(err))
}

func TestTokenManager_RejectsMissingEmail(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{Email: "a@example.com"})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}
