package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisTokenRepository struct {
	rdb *redis.Client
}

func NewRedisTokenRepository(rdb *redis.Client) TokenRepository {
	return &redisTokenRepository{rdb: rdb}
}

func (r *redisTokenRepository) Blacklist(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// expired tokens are rejected by signature verification anyway
		return nil
	}

	// SET NX distinguishes a repeated logout with the same token
	ok, err := r.rdb.SetNX(ctx, blacklistKey(jti), "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	if !ok {
		return ErrAlreadyBlacklisted
	}

	return nil
}

func (r *redisTokenRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	count, err := r.rdb.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return count > 0, nil
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}
