// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/internal/utils"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	ProfileService ProfileService
}

// NewServices builds the services over storages, each wrapped with request
// validation. The token codec is constructed here, so an empty signing key
// fails startup.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	tokens, err := crypto.NewJWTCodec(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, hasher, tokens, ids, logger),
		),
		PostService: NewPostValidationService().Wrap(
			NewPostService(storages.PostRepository, storages.ImageStorage, ids, logger),
		),
		ProfileService: NewProfileValidationService().Wrap(
			NewProfileService(storages.UserRepository, logger),
		),
	}, nil
}
