package service

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	// uniqueness checks run before any insert
	taken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		// unknown email and wrong password collapse into one error so
		// the response cannot be used to enumerate accounts
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrWrongPassword) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("authentication failed: %w", err)
	}

	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return user, pair, nil
}
