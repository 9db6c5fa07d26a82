package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: expiry,
		JWTIssuer:         "fintrack-test",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(time.Hour))
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	subject, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, subject)
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(-time.Minute))
	user := &domain.User{UserID: uuid.NewString()}

	token, _, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	subject, err := svc.ValidateAccessToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Empty(t, subject)
}

func TestTokenService_GarbageTokenRejected(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(time.Hour))

	subject, err := svc.ValidateAccessToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Empty(t, subject)
}
