package service

import (
	"context"
	"errors"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type CreatePostRequest struct {
	AuthorID           string
	Title              string
	ContentDescription string
}

type UpdatePostRequest struct {
	PostID             string
	AuthorID           string
	Title              *string
	ContentDescription *string
}

type PostService interface {
	ListPosts(ctx context.Context, authorID string) ([]models.Post, error)
	GetPost(ctx context.Context, postID, authorID string) (*models.Post, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID, authorID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) ListPosts(ctx context.Context, authorID string) ([]models.Post, error) {
	return p.postRepo.GetByAuthorID(ctx, authorID)
}

func (p *postService) GetPost(ctx context.Context, postID, authorID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

// CreatePost takes the author from the request struct built by the
// handler out of the authenticated caller, never from the payload.
func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID:           req.AuthorID,
		Title:              req.Title,
		ContentDescription: req.ContentDescription,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.GetPost(ctx, req.PostID, req.AuthorID)
	if err != nil {
		return nil, err
	}

	// nil fields keep their previous values (PATCH semantics)
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.ContentDescription != nil {
		post.ContentDescription = *req.ContentDescription
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, authorID string) error {
	err := p.postRepo.Delete(ctx, postID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
