// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mani62/Blog-Backend/internal/validators"
	"github.com/mani62/Blog-Backend/models"
)

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("error during registration request validation: %w", err)
	}

	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("error during login request validation: %w", err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, token string) (models.Principal, error) {
	return v.inner.ParseToken(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
