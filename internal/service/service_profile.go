// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/models"
)

type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (p *profileService) GetMe(ctx context.Context, principal models.Principal) (models.User, error) {
	if principal.UserID == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := p.userRepository.FindUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetMe").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateMe changes the caller's own name and email. An email already used
// by another account yields ErrDuplicateEmail.
func (p *profileService) UpdateMe(ctx context.Context, principal models.Principal, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if principal.UserID == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := p.userRepository.UpdateUser(ctx, principal.UserID, models.UserUpdate{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, ErrUserNotFound
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
		log.Err(err).Str("func", "*profileService.UpdateMe").Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("profile updated")
	return user, nil
}
