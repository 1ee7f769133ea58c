// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the blog backend:
// registration and login, post management with ownership enforcement, and
// profile management. Services depend on store interfaces only and keep no
// mutable state beyond what they receive at construction.
package service

import (
	"context"

	"github.com/mani62/Blog-Backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Register creates an account and returns a token for it.
	Register(ctx context.Context, request models.RegisterRequest) (models.Token, error)
	// Login returns ErrInvalidCredentials for an unknown email and for a
	// wrong password alike.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	// ParseToken verifies a bearer token and returns the identity it carries.
	ParseToken(ctx context.Context, token string) (models.Principal, error)
}

type PostService interface {
	Create(ctx context.Context, principal models.Principal, request models.CreatePostRequest, image *models.ImageUpload) (models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	// Update and Delete only ever touch posts authored by principal.
	Update(ctx context.Context, principal models.Principal, id string, update models.PostUpdate, image *models.ImageUpload) (models.Post, error)
	Delete(ctx context.Context, principal models.Principal, id string) (models.DeleteResult, error)
}

type ProfileService interface {
	GetMe(ctx context.Context, principal models.Principal) (models.User, error)
	UpdateMe(ctx context.Context, principal models.Principal, request models.UpdateProfileRequest) (models.User, error)
}
