package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"blogapi/internal/models"
)

// ErrNotFound is returned when a record does not exist or is owned by
// a different user (the two cases are indistinguishable on purpose).
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID, authorID string) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID, authorID string) error
}

// TokenRepository is the refresh-token blacklist store. It can be backed
// by postgres or redis, selected in config.
type TokenRepository interface {
	Blacklist(ctx context.Context, jti string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Token TokenRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Token: NewTokenRepository(db),
	}
}

func NewRepositoryWithRedisBlacklist(db *sqlx.DB, rdb *redis.Client) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Token: NewRedisTokenRepository(rdb),
	}
}
