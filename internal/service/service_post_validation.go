// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mani62/Blog-Backend/internal/validators"
	"github.com/mani62/Blog-Backend/models"
)

// PostValidationService rejects malformed post payloads and image uploads
// before they reach the wrapped PostService, so no file is stored for an
// invalid request.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PostValidationService) Create(ctx context.Context, principal models.Principal, request models.CreatePostRequest, image *models.ImageUpload) (models.Post, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}
	if err := v.validateImage(ctx, image); err != nil {
		return models.Post{}, err
	}

	return v.inner.Create(ctx, principal, request, image)
}

func (v *PostValidationService) List(ctx context.Context) ([]models.Post, error) {
	return v.inner.List(ctx)
}

func (v *PostValidationService) Get(ctx context.Context, id string) (models.Post, error) {
	return v.inner.Get(ctx, id)
}

func (v *PostValidationService) Update(ctx context.Context, principal models.Principal, id string, update models.PostUpdate, image *models.ImageUpload) (models.Post, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Post{}, fmt.Errorf("error during post update validation: %w", err)
	}
	if err := v.validateImage(ctx, image); err != nil {
		return models.Post{}, err
	}

	return v.inner.Update(ctx, principal, id, update, image)
}

func (v *PostValidationService) Delete(ctx context.Context, principal models.Principal, id string) (models.DeleteResult, error) {
	return v.inner.Delete(ctx, principal, id)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

func (v *PostValidationService) validateImage(ctx context.Context, image *models.ImageUpload) error {
	if image == nil {
		return nil
	}
	if err := v.validator.Validate(ctx, image); err != nil {
		return fmt.Errorf("error during image validation: %w", err)
	}

	return nil
}
