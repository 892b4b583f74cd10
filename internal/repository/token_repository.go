package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrAlreadyBlacklisted is returned when the same refresh token is
// blacklisted twice (a repeated logout).
var ErrAlreadyBlacklisted = errors.New("token is already blacklisted")

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Blacklist(ctx context.Context, jti string, expiresAt time.Time) error {
	query := `
		INSERT INTO token_blacklist (jti, expires_at, blacklisted_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, jti, expiresAt, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrAlreadyBlacklisted
		}
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

func (r *tokenRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM token_blacklist WHERE jti = $1`

	err := r.db.GetContext(ctx, &count, query, jti)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return count > 0, nil
}
