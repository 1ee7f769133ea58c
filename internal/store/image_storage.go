// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
)

// ErrInvalidImageName is returned for names that are empty or contain path
// elements.
var ErrInvalidImageName = errors.New("invalid image name")

// NewImageStorage selects the S3 backend when a bucket is configured and the
// local directory backend otherwise.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	if cfg.S3.Enabled() {
		return NewS3ImageStorage(ctx, cfg.S3, log)
	}
	return NewLocalImageStorage(cfg.Dir, cfg.PublicPath, log)
}

// localImageStorage writes images into a directory served by the HTTP
// router under publicPath.
type localImageStorage struct {
	dir        string
	publicPath string
	logger     *logger.Logger
}

// NewLocalImageStorage creates dir when missing.
func NewLocalImageStorage(dir, publicPath string, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewLocalImageStorage").Str("dir", dir).Msg("error creating images directory")
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("creating local image storage")
	return &localImageStorage{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		logger:     log,
	}, nil
}

func (s *localImageStorage) Save(ctx context.Context, name string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if !isPlainFileName(name) {
		return "", ErrInvalidImageName
	}

	fullPath := filepath.Join(s.dir, name)
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localImageStorage.Save").Str("name", name).Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(fullPath)
		log.Err(err).Str("func", "*localImageStorage.Save").Str("name", name).Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

func (s *localImageStorage) Remove(ctx context.Context, publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, s.publicPath+"/")
	if !ok || !isPlainFileName(name) {
		return ErrInvalidImageName
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrImageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*localImageStorage.Remove").Str("name", name).Msg("error removing image file")
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}

func isPlainFileName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
