// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants written into HTTP response
// bodies by the blog backend middleware.
package app

const (
	// MsgUnauthorized is returned when the Authorization header is missing,
	// malformed, or carries a token that fails verification.
	MsgUnauthorized = "unauthorized"

	// MsgTokenExpired is returned when a bearer token verifies but its
	// expiry time has passed.
	MsgTokenExpired = "token expired"

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// decompressed.
	MsgInvalidGzip = "Invalid gzip data"
)
