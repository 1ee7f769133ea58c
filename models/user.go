// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and as the
// author of posts.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// Email is the unique login identifier of the user. It is compared
	// case-sensitively, exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// Name is the optional display name of the user.
	Name *string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Author is the public projection of a [User] embedded into post responses.
type Author struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// Principal is the verified identity attached to an authenticated request.
// It lives only for the lifetime of that request and is never persisted.
type Principal struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// UserUpdate carries a partial profile change. Nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}
