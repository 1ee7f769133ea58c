// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the blog backend REST API.
//
// [BlogClient] hides the transport from callers such as the command-line
// client. Failed responses are mapped onto the sentinel errors in errors.go so
// that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mani62/Blog-Backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlogClient talks to the blog backend on behalf of one user.
type BlogClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// CreatePostWithImage sends the post as a multipart form. image may be nil.
	CreatePostWithImage(ctx context.Context, req models.CreatePostRequest, image *models.ImageUpload) (models.Post, error)

	UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error)

	// UpdatePostWithImage sends the non-nil fields of update as a multipart
	// form. image may be nil.
	UpdatePostWithImage(ctx context.Context, id string, update models.PostUpdate, image *models.ImageUpload) (models.Post, error)

	// DeletePost returns the number of removed posts. A post owned by someone
	// else yields a count of zero, not an error.
	DeletePost(ctx context.Context, id string) (models.DeleteResult, error)
}
