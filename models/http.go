// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PATCH /profile/me.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CreatePostRequest is the body of POST /posts and the form fields of
// POST /posts/with-image.
type CreatePostRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Published *bool   `json:"published,omitempty"`
	Image     *string `json:"image,omitempty"`
}

// ImageUpload is an uploaded image file waiting to be stored.
type ImageUpload struct {
	// FileName is the client-side file name; only its extension is kept.
	FileName string

	// ContentType is the MIME type reported by the client.
	ContentType string

	// Size is the file size in bytes.
	Size int64

	// Body streams the file content.
	Body io.Reader
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
