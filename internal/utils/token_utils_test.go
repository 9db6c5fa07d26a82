package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, time.Hour, "fintrack-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "fintrack-test", claims.Issuer)
}

func TestParseAndValidateJWT_ExpiredRejected(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, -time.Minute, "fintrack-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_WrongSecretRejected(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, time.Hour, "fintrack-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "a-different-secret")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_GarbageRejected(t *testing.T) {
	claims, err := ParseAndValidateJWT("not-a-jwt", testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
}
