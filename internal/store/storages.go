// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
)

// Storages aggregates every persistence adapter the services depend on.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	ImageStorage   ImageStorage

	// DB is the shared connection, exposed for health checks and shutdown.
	DB *DB
}

// NewStorages connects to the database, applies migrations and builds the
// image storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnection(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		ImageStorage:   images,
		DB:             db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
