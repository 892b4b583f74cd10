package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carried by both token kinds; TokenType tells them apart so an
// access token can never be blacklisted or exchanged as a refresh token.
type Claims struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type TokenService interface {
	GeneratePair(user *models.User) (*models.TokenPair, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	BlacklistRefreshToken(ctx context.Context, tokenString string) error
	RefreshPair(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type tokenService struct {
	tokenRepo repository.TokenRepository
	cfg       *config.Config
}

func NewTokenService(tokenRepo repository.TokenRepository, cfg *config.Config) TokenService {
	return &tokenService{
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

func (s *tokenService) GeneratePair(user *models.User) (*models.TokenPair, error) {
	access, err := s.generateToken(user, tokenTypeAccess, s.cfg.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.generateToken(user, tokenTypeRefresh, s.cfg.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *tokenService) generateToken(user *models.User, tokenType string, expiry time.Duration) (string, error) {
	claims := Claims{
		UserID:    user.UserID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecretKey))
}

func (s *tokenService) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *tokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// validateRefreshToken also checks the blacklist, so a logged-out token
// is rejected everywhere a refresh token is accepted.
func (s *tokenService) validateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	return claims, nil
}

func (s *tokenService) BlacklistRefreshToken(ctx context.Context, tokenString string) error {
	claims, err := s.validateRefreshToken(ctx, tokenString)
	if err != nil {
		return err
	}

	err = s.tokenRepo.Blacklist(ctx, claims.ID, claims.ExpiresAt.Time)
	if errors.Is(err, repository.ErrAlreadyBlacklisted) {
		return ErrTokenBlacklisted
	}

	return err
}

func (s *tokenService) RefreshPair(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	// rotation: the used refresh token is retired
	err = s.tokenRepo.Blacklist(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyBlacklisted) {
			return nil, ErrTokenBlacklisted
		}
		return nil, err
	}

	user := &models.User{
		UserID:   claims.UserID,
		Username: claims.Username,
	}

	return s.GeneratePair(user)
}
