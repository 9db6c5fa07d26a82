package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user account. Returns
	// apperrors.ErrDuplicate when the email is already registered.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// EnsureUserForGoogle finds or creates the user bound to a verified
	// Google identity.
	EnsureUserForGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// ChangePassword replaces the user's password after verifying the
	// current one. Returns apperrors.ErrUnauthorized on a wrong current
	// password and apperrors.ErrValidation on a weak new one.
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies email/password credentials. Returns
	// apperrors.ErrUnauthorized without revealing which credential failed.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
