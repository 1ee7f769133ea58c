// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mani62/Blog-Backend/internal/validators"
	"github.com/mani62/Blog-Backend/models"
)

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProfileValidationService) GetMe(ctx context.Context, principal models.Principal) (models.User, error) {
	return v.inner.GetMe(ctx, principal)
}

func (v *ProfileValidationService) UpdateMe(ctx context.Context, principal models.Principal, request models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation: %w", err)
	}

	return v.inner.UpdateMe(ctx, principal, request)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
