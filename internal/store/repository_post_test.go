// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &postRepository{
		DB:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows(postColumns)
}

func postWithAuthorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "published", "image", "author_id", "created_at", "updated_at",
		"id", "email", "name",
	})
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	post := models.Post{ID: "p1", Title: "T", Content: "C", AuthorID: "u1"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("p1", "T", "C", false, nil, "u1", fixedNow, fixedNow).
		WillReturnRows(postRows().AddRow("p1", "T", "C", false, nil, "u1", fixedNow, fixedNow))

	created, err := repo.CreatePost(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	assert.False(t, created.Published)
	assert.Nil(t, created.Image)
	assert.Nil(t, created.Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePost_WithImage(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	post := models.Post{ID: "p1", Title: "T", Content: "C", Published: true, Image: ptr("/uploads/a.png"), AuthorID: "u1"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("p1", "T", "C", true, "/uploads/a.png", "u1", fixedNow, fixedNow).
		WillReturnRows(postRows().AddRow("p1", "T", "C", true, "/uploads/a.png", "u1", fixedNow, fixedNow))

	created, err := repo.CreatePost(context.Background(), post)
	require.NoError(t, err)
	require.NotNil(t, created.Image)
	assert.Equal(t, "/uploads/a.png", *created.Image)
}

func TestCreatePost_DBError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("INSERT INTO posts").WillReturnError(errors.New("boom"))

	_, err := repo.CreatePost(context.Background(), models.Post{ID: "p1", AuthorID: "u1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindPostByID(t *testing.T) {
	t.Run("found with author", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id = ").
			WithArgs("p1").
			WillReturnRows(postWithAuthorRows().AddRow("p1", "T", "C", false, nil, "u1", fixedNow, fixedNow, "u1", "a@x.io", "Ann"))

		post, err := repo.FindPostByID(context.Background(), "p1")
		require.NoError(t, err)
		require.NotNil(t, post.Author)
		assert.Equal(t, "u1", post.Author.ID)
		assert.Equal(t, "a@x.io", post.Author.Email)
		assert.Equal(t, "Ann", *post.Author.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p").WithArgs("p1").WillReturnRows(postWithAuthorRows())

		_, err := repo.FindPostByID(context.Background(), "p1")
		assert.ErrorIs(t, err, ErrNoPostWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p").WithArgs("p1").WillReturnError(errors.New("boom"))

		_, err := repo.FindPostByID(context.Background(), "p1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestListPublishedPosts(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("WHERE p.published = (.+) ORDER BY p.created_at DESC").
			WithArgs(true).
			WillReturnRows(postWithAuthorRows().
				AddRow("p2", "T2", "C2", true, "/uploads/b.png", "u2", fixedNow, fixedNow, "u2", "b@x.io", nil).
				AddRow("p1", "T1", "C1", true, nil, "u1", fixedNow, fixedNow, "u1", "a@x.io", "Ann"))

		posts, err := repo.ListPublishedPosts(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "p2", posts[0].ID)
		assert.Nil(t, posts[0].Author.Name)
		assert.Equal(t, "Ann", *posts[1].Author.Name)
	})

	t.Run("empty is non-nil", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p").WillReturnRows(postWithAuthorRows())

		posts, err := repo.ListPublishedPosts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p").WillReturnError(errors.New("boom"))

		_, err := repo.ListPublishedPosts(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("FROM posts p").WillReturnRows(postWithAuthorRows().
			AddRow("p1", "T1", "C1", true, nil, "u1", fixedNow, fixedNow, "u1", "a@x.io", nil).
			RowError(0, errors.New("broken row")))

		_, err := repo.ListPublishedPosts(context.Background())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestUpdateOwned(t *testing.T) {
	t.Run("owner updates provided fields only", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery(`UPDATE posts SET title = \$1, updated_at = \$2 WHERE id = \$3 AND author_id = \$4 RETURNING`).
			WithArgs("New", fixedNow, "p1", "u1").
			WillReturnRows(postRows().AddRow("p1", "New", "C", false, nil, "u1", fixedNow, fixedNow))

		post, err := repo.UpdateOwned(context.Background(), "p1", "u1", models.PostUpdate{Title: ptr("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", post.Title)
		assert.Equal(t, "C", post.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-owner matches no row", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("UPDATE posts SET").
			WithArgs("New", fixedNow, "p1", "u2").
			WillReturnRows(postRows())

		_, err := repo.UpdateOwned(context.Background(), "p1", "u2", models.PostUpdate{Title: ptr("New")})
		assert.ErrorIs(t, err, ErrNoPostWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)

		mock.ExpectQuery("UPDATE posts SET").WillReturnError(errors.New("boom"))

		_, err := repo.UpdateOwned(context.Background(), "p1", "u1", models.PostUpdate{})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestDeleteOwned(t *testing.T) {
	tests := []struct {
		name      string
		affected  int64
		execErr   error
		wantCount int64
		wantErr   error
	}{
		{name: "owner deletes", affected: 1, wantCount: 1},
		{name: "non-owner or missing deletes nothing", affected: 0, wantCount: 0},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			exp := mock.ExpectExec(`DELETE FROM posts WHERE id = \$1 AND author_id = \$2`).WithArgs("p1", "u1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			count, err := repo.DeleteOwned(context.Background(), "p1", "u1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestDeleteOwned_RowsAffectedError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectExec("DELETE FROM posts").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows affected info")))

	_, err := repo.DeleteOwned(context.Background(), "p1", "u1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
