package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegisterUser_Success() {
	req := dto.RegisterRequest{Email: "new@example.com", Password: "password123", Name: "New User"}

	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(user domain.User) bool {
		// The password is stored only as a bcrypt hash.
		return user.Email == req.Email &&
			user.UserID != "" &&
			user.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal(req.Email, user.Email)
	s.Equal(req.Name, user.Name)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "taken@example.com", Password: "password123"}

	s.mockRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	password := "password123"
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "user@example.com",
		PasswordHash: hash,
	}
	s.mockRepo.On("FindUserByEmail", s.ctx, stored.Email).Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, stored.Email, password)

	s.Require().NoError(err)
	s.Equal(stored.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-password")
	s.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", PasswordHash: hash}
	s.mockRepo.On("FindUserByEmail", s.ctx, stored.Email).Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, stored.Email, "wrong-password")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameFailure() {
	// Unknown email must be indistinguishable from a wrong password.
	s.mockRepo.On("FindUserByEmail", s.ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "nobody@example.com", "whatever")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	s.False(errors.Is(err, apperrors.ErrNotFound))
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestChangePassword_Success() {
	userID := uuid.NewString()
	hash, err := utils.HashPassword("old-password")
	s.Require().NoError(err)

	s.mockRepo.On("FindUserByID", s.ctx, userID).
		Return(&domain.User{UserID: userID, PasswordHash: hash}, nil).Once()
	s.mockRepo.On("UpdateUserPassword", s.ctx, userID, mock.MatchedBy(func(newHash string) bool {
		return utils.CheckPasswordHash("new-password-123", newHash)
	})).Return(nil).Once()

	s.Require().NoError(s.service.ChangePassword(s.ctx, userID, "old-password", "new-password-123"))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	userID := uuid.NewString()
	hash, err := utils.HashPassword("old-password")
	s.Require().NoError(err)

	s.mockRepo.On("FindUserByID", s.ctx, userID).
		Return(&domain.User{UserID: userID, PasswordHash: hash}, nil).Once()

	err = s.service.ChangePassword(s.ctx, userID, "not-the-password", "new-password-123")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
	s.mockRepo.AssertNotCalled(s.T(), "UpdateUserPassword")
}

func (s *UserServiceTestSuite) TestChangePassword_WeakNewPasswordRejected() {
	err := s.service.ChangePassword(s.ctx, uuid.NewString(), "old-password", "short")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockRepo.AssertNotCalled(s.T(), "FindUserByID")
}

func (s *UserServiceTestSuite) TestEnsureUserForGoogle_ExistingUser() {
	stored := &domain.User{UserID: uuid.NewString(), Email: "existing@example.com"}
	s.mockRepo.On("FindUserByEmail", s.ctx, stored.Email).Return(stored, nil).Once()

	user, err := s.service.EnsureUserForGoogle(s.ctx, domain.GoogleUserInfo{
		Email:         stored.Email,
		Name:          "Existing",
		VerifiedEmail: true,
	})

	s.Require().NoError(err)
	s.Equal(stored.UserID, user.UserID)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser")
}

func (s *UserServiceTestSuite) TestEnsureUserForGoogle_CreatesOnFirstSignIn() {
	info := domain.GoogleUserInfo{Email: "first@example.com", Name: "First Timer", VerifiedEmail: true}

	s.mockRepo.On("FindUserByEmail", s.ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == info.Email && user.Name == info.Name && user.PasswordHash != ""
	})).Return(nil).Once()

	user, err := s.service.EnsureUserForGoogle(s.ctx, info)

	s.Require().NoError(err)
	s.Equal(info.Email, user.Email)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestEnsureUserForGoogle_UnverifiedEmailRejected() {
	user, err := s.service.EnsureUserForGoogle(s.ctx, domain.GoogleUserInfo{
		Email:         "unverified@example.com",
		VerifiedEmail: false,
	})

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.Nil(user)
	s.mockRepo.AssertNotCalled(s.T(), "FindUserByEmail")
}

func (s *UserServiceTestSuite) TestEnsureUserForGoogle_CreateRaceRefetches() {
	info := domain.GoogleUserInfo{Email: "race@example.com", Name: "Racer", VerifiedEmail: true}
	winner := &domain.User{UserID: uuid.NewString(), Email: info.Email, CreatedAt: time.Now()}

	s.mockRepo.On("FindUserByEmail", s.ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()
	// A concurrent first sign-in won the insert; the second lookup sees it.
	s.mockRepo.On("FindUserByEmail", s.ctx, info.Email).Return(winner, nil).Once()

	user, err := s.service.EnsureUserForGoogle(s.ctx, info)

	s.Require().NoError(err)
	s.Equal(winner.UserID, user.UserID)
	s.mockRepo.AssertExpectations(s.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
