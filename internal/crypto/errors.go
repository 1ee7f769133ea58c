// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHashFormat is returned when a stored hash is not a bcrypt hash.
	ErrInvalidHashFormat = errors.New("invalid hash format")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for well-signed tokens past their expiry.
	// It wraps ErrInvalidToken.
	ErrTokenExpired = fmt.Errorf("%w: token is expired", ErrInvalidToken)
	// ErrEmptySignKey is returned by NewJWTCodec when no secret is configured.
	ErrEmptySignKey = errors.New("token sign key is empty")
)
