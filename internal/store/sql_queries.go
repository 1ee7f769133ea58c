// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mani62/Blog-Backend/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}
	postColumns = []string{"id", "title", "content", "published", "image", "author_id", "created_at", "updated_at"}

	// postWithAuthorColumns selects a post joined with the public part of its
	// author. The password hash is never selected here.
	postWithAuthorColumns = []string{
		"p.id", "p.title", "p.content", "p.published", "p.image", "p.author_id", "p.created_at", "p.updated_at",
		"u.id", "u.email", "u.name",
	}
)

const (
	postsWithAuthorFrom = "posts p"
	postsAuthorJoin     = "users u ON u.id = p.author_id"
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id string, update models.UserUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(models.User{}.TableName())
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Content, post.Published, post.Image, post.AuthorID, post.CreatedAt, post.UpdatedAt).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindPostByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(postWithAuthorColumns...).
		From(postsWithAuthorFrom).
		Join(postsAuthorJoin).
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListPublishedPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(postWithAuthorColumns...).
		From(postsWithAuthorFrom).
		Join(postsAuthorJoin).
		Where(sq.Eq{"p.published": true}).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateOwnedPostQuery builds the single conditional statement that
// both checks ownership and applies the change. Fields absent from update do
// not appear in the SET list; updated_at is always bumped.
func buildUpdateOwnedPostQuery(b sq.StatementBuilderType, id, authorID string, update models.PostUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(models.Post{}.TableName())
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"author_id": authorID}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteOwnedPostQuery(b sq.StatementBuilderType, id, authorID string) (string, []any, error) {
	query, args, err := b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
