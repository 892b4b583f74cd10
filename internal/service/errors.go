package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
	ErrNotFound           = errors.New("post not found")
)
