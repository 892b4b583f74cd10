package service

import (
	"blogapi/internal/config"
	"blogapi/internal/repository"
)

type Service struct {
	Auth  AuthService
	Token TokenService
	Post  PostService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	tokens := NewTokenService(rep.Token, cfg)

	return &Service{
		Auth:  NewAuthService(rep.User, tokens, cfg),
		Token: tokens,
		Post:  NewPostService(rep.Post),
	}
}
