// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence adapters of the blog backend: the
// user and post repositories over database/sql (PostgreSQL through pgx or
// SQLite through mattn/go-sqlite3) and the image storage backends.
package store

import (
	"context"
	"io"

	"github.com/mani62/Blog-Backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A taken email
	// yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// UpdateUser applies the non-nil fields of update to the account id.
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
}

// PostRepository persists posts. UpdateOwned and DeleteOwned are the only
// mutation paths for existing posts and both are keyed on (id, author_id)
// in a single statement.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// FindPostByID returns the post with its author, or ErrNoPostWasFound.
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	// ListPublishedPosts returns published posts with their authors, newest first.
	ListPublishedPosts(ctx context.Context) ([]models.Post, error)
	// UpdateOwned returns ErrNoPostWasFound when no post has both id and authorID.
	UpdateOwned(ctx context.Context, id, authorID string, update models.PostUpdate) (models.Post, error)
	// DeleteOwned returns the number of deleted rows (0 or 1).
	DeleteOwned(ctx context.Context, id, authorID string) (int64, error)
}

// ImageStorage stores uploaded post images.
type ImageStorage interface {
	// Save writes body under name and returns the public path of the image.
	Save(ctx context.Context, name string, body io.Reader) (string, error)
	// Remove deletes a previously saved image by its public path.
	Remove(ctx context.Context, publicPath string) error
}
