// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build integration

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newPostgresDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blog_test"),
		postgres.WithUsername("blog"),
		postgres.WithPassword("blog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewConnection(ctx, config.DB{DSN: connStr}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestPostgres_Repositories(t *testing.T) {
	db := newPostgresDB(t)
	assert.Equal(t, DialectPostgres, db.Dialect())

	users := NewUserRepository(db, logger.Nop())
	posts := NewPostRepository(db, logger.Nop())
	ctx := context.Background()

	for _, id := range []string{"alice", "bob"} {
		_, err := users.CreateUser(ctx, models.User{ID: id, Email: id + "@x.io", PasswordHash: "h"})
		require.NoError(t, err)
	}

	_, err := users.CreateUser(ctx, models.User{ID: "carol", Email: "alice@x.io", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = posts.CreatePost(ctx, models.Post{ID: "p1", Title: "T", Content: "C", AuthorID: "alice"})
	require.NoError(t, err)

	_, err = posts.UpdateOwned(ctx, "p1", "bob", models.PostUpdate{Title: ptr("X")})
	assert.ErrorIs(t, err, ErrNoPostWasFound)

	updated, err := posts.UpdateOwned(ctx, "p1", "alice", models.PostUpdate{Published: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Published)

	listed, err := posts.ListPublishedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "alice@x.io", listed[0].Author.Email)

	// concurrent owner deletes remove the row exactly once
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := posts.DeleteOwned(ctx, "p1", "alice")
			assert.NoError(t, err)
			mu.Lock()
			total += count
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), total)
}
