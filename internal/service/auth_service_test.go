package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func testAuthService(userRepo repository.UserRepository) AuthService {
	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 168 * time.Hour,
	}
	tokens := NewTokenService(newMemoryBlacklist(), cfg)
	return NewAuthService(userRepo, tokens, cfg)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	req := RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "p1",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", mock.Anything, "alice@example.com").Return(false, nil)
		userRepo.On("UsernameExists", mock.Anything, "alice").Return(false, nil)
		userRepo.On("CreateUser", mock.Anything, mock.Anything, "p1").Return(nil)

		svc := testAuthService(userRepo)

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email fails before insert", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", mock.Anything, "alice@example.com").Return(true, nil)

		svc := testAuthService(userRepo)

		user, err := svc.Register(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate username fails before insert", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("EmailExists", mock.Anything, "alice@example.com").Return(false, nil)
		userRepo.On("UsernameExists", mock.Anything, "alice").Return(true, nil)

		svc := testAuthService(userRepo)

		user, err := svc.Register(ctx, req)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns token pair", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("VerifyPassword", mock.Anything, "alice@example.com", "p1").
			Return(&models.User{UserID: "user-123", Username: "alice", Email: "alice@example.com"}, nil)

		svc := testAuthService(userRepo)

		user, pair, err := svc.Login(ctx, "alice@example.com", "p1")

		require.NoError(t, err)
		assert.Equal(t, "user-123", user.UserID)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)
	})

	t.Run("unknown email and wrong password give the same error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("VerifyPassword", mock.Anything, "unknown@example.com", "p1").
			Return(nil, repository.ErrNotFound)
		userRepo.On("VerifyPassword", mock.Anything, "alice@example.com", "wrong").
			Return(nil, repository.ErrWrongPassword)

		svc := testAuthService(userRepo)

		_, _, errUnknown := svc.Login(ctx, "unknown@example.com", "p1")
		_, _, errWrong := svc.Login(ctx, "alice@example.com", "wrong")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}
