// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
//
// Existing posts are only ever mutated through statements whose WHERE
// clause carries both the post id and the author id, so the ownership check
// and the write happen in one round trip with no window between them.
type postRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
		now:    utcNow,
	}
}

// CreatePost inserts post and returns the stored row.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = p.now()
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}

	query, args, err := buildCreatePostQuery(p.builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, err
	}

	created, err := scanPost(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Str("author_id", post.AuthorID).
			Stringer("classification", p.classify(err)).
			Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindPostByID returns the post with its author regardless of its
// published flag.
func (p *postRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostByIDQuery(p.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("failed to build query")
		return models.Post{}, err
	}

	post, err := scanPostWithAuthor(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNoPostWasFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Str("post_id", id).Msg("error finding post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// ListPublishedPosts returns every published post with its author, newest
// first. An empty result is an empty, non-nil slice.
func (p *postRepository) ListPublishedPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPublishedPostsQuery(p.builder())
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublishedPosts").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublishedPosts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		post, scanErr := scanPostWithAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*postRepository.ListPublishedPosts").
				Int("scanned", len(posts)).
				Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublishedPosts").Msg("error iterating post rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdateOwned applies update to the post only when it belongs to authorID.
// A missing post and a post owned by someone else are indistinguishable
// here: both return [ErrNoPostWasFound].
func (p *postRepository) UpdateOwned(ctx context.Context, id, authorID string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOwnedPostQuery(p.builder(), id, authorID, update, p.now())
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdateOwned").Msg("failed to build query")
		return models.Post{}, err
	}

	post, err := scanPost(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "*postRepository.UpdateOwned").
				Str("post_id", id).
				Str("author_id", authorID).
				Msg("no owned post matched")
			return models.Post{}, ErrNoPostWasFound
		}
		log.Err(err).
			Str("func", "*postRepository.UpdateOwned").
			Str("post_id", id).
			Stringer("classification", p.classify(err)).
			Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// DeleteOwned deletes the post only when it belongs to authorID and returns
// the number of removed rows.
func (p *postRepository) DeleteOwned(ctx context.Context, id, authorID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedPostQuery(p.builder(), id, authorID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeleteOwned").Msg("failed to build query")
		return 0, err
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.DeleteOwned").
			Str("post_id", id).
			Stringer("classification", p.classify(err)).
			Msg("error deleting post")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeleteOwned").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}
