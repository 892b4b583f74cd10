package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Post struct {
	PostID             string    `json:"id" db:"post_id"`
	AuthorID           string    `json:"author" db:"author_id"`
	Title              string    `json:"title" db:"title"`
	ContentDescription string    `json:"content_description" db:"content_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// TokenPair is the access/refresh pair issued on login, never persisted
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
