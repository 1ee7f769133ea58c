// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side credential primitives: one-way
// password hashing and signed access tokens. Both are pure functions of
// their input plus configuration fixed at construction, so every
// implementation here is safe for concurrent use.
package crypto

import "github.com/mani62/Blog-Backend/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and checks salted, adaptive password hashes.
type PasswordHasher interface {
	// Hash returns an encoded hash with a random salt embedded, so two calls
	// with the same plaintext return different strings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is
	// (false, nil); a hash in an unrecognized format is ErrInvalidHashFormat.
	Verify(plaintext, hash string) (bool, error)
}

// TokenCodec issues and verifies signed access tokens.
type TokenCodec interface {
	// Issue signs claims into a compact token.
	Issue(claims models.Claims) (string, error)

	// Verify checks the token and returns its claims. Every failure matches
	// ErrInvalidToken; an expired token additionally matches ErrTokenExpired.
	Verify(token string) (models.Claims, error)
}
