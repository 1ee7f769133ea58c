// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry owned by the user referenced in AuthorID.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	Image     *string   `json:"image"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Author is populated by read queries that join the users table.
	Author *Author `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate represents a partial update of a single post.
// Only non-nil fields are written; every nil field keeps its current value.
type PostUpdate struct {
	// Title replaces the post title when non-nil.
	Title *string `json:"title,omitempty"`

	// Content replaces the post body when non-nil.
	Content *string `json:"content,omitempty"`

	// Published toggles post visibility when non-nil.
	Published *bool `json:"published,omitempty"`

	// Image replaces the public image path when non-nil.
	Image *string `json:"image,omitempty"`
}

// IsEmpty reports whether the update carries no field changes.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Published == nil && u.Image == nil
}

// DeleteResult is returned by post deletion. Count is 1 when the caller owned
// the post and it was removed, 0 otherwise.
type DeleteResult struct {
	Count int64 `json:"count"`
}
