package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, title, content_description, created_at, updated_at)
        VALUES
        (:post_id, :author_id, :title, :content_description, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID is scoped by author: a post owned by someone else looks exactly
// like a missing post.
func (r *postRepository) GetByID(ctx context.Context, postID, authorID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1 AND author_id = $2
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC
    `

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content_description = :content_description,
			updated_at = :updated_at
		WHERE post_id = :post_id AND author_id = :author_id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID, authorID string) error {
	query := `DELETE FROM posts WHERE post_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
