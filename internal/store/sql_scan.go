// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/mani62/Blog-Backend/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		name sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &name, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}
	user.Name = nullableString(name)

	return user, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post  models.Post
		image sql.NullString
	)

	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Published, &image, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return models.Post{}, err
	}
	post.Image = nullableString(image)

	return post, nil
}

func scanPostWithAuthor(row rowScanner) (models.Post, error) {
	var (
		post       models.Post
		author     models.Author
		image      sql.NullString
		authorName sql.NullString
	)

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Published,
		&image,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Email,
		&authorName,
	)
	if err != nil {
		return models.Post{}, err
	}
	post.Image = nullableString(image)
	author.Name = nullableString(authorName)
	post.Author = &author

	return post, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
