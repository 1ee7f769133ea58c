// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Messages of these errors are returned to API clients verbatim.
var (
	ErrDuplicateEmail     = errors.New("Email already in use")
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrUnauthorized = errors.New("Unauthorized")

	ErrPostNotFoundOrForbidden = errors.New("Unauthorized or post not found")
	ErrPostNotFound            = errors.New("Post not found")
	ErrUserNotFound            = errors.New("User not found")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrImageUploadFailed   = errors.New("image upload failed")
)
