// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mani62/Blog-Backend/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldImage    = "image"
)

const (
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
	MaxNameLength    = 100
	MaxTitleLength   = 200
	MaxEmailLength   = 254
)

// AllowedImageExtensions lists the accepted upload extensions, lower case.
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png"}

// RequestValidator checks the inbound DTOs of the auth, profile and post
// endpoints.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(*value, fields...)

	case models.CreatePostRequest:
		return v.validateCreatePostRequest(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePostRequest(*value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value, fields...)

	case models.ImageUpload:
		return v.validateImageUpload(value, fields...)
	case *models.ImageUpload:
		return v.validateImageUpload(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validateNewPassword(request.Password); err != nil {
				return err
			}
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks presence: a format rule here would let a
// caller tell "malformed" from "wrong" credentials.
func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateProfileRequest(request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email != nil {
				if err := validateEmail(*request.Email); err != nil {
					return err
				}
			}
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreatePostRequest(request models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(request.Title); err != nil {
				return err
			}
		case FieldContent:
			if strings.TrimSpace(request.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate checks only the fields that are present.
func (v *RequestValidator) validatePostUpdate(update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil {
				if err := validateTitle(*update.Title); err != nil {
					return err
				}
			}
		case FieldContent:
			if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateImageUpload(upload models.ImageUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if !IsAllowedImageExtension(upload.FileName) {
				return ErrInvalidImageType
			}
			if upload.Size <= 0 || upload.Body == nil {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsAllowedImageExtension reports whether fileName ends in an accepted
// image extension, ignoring case.
func IsAllowedImageExtension(fileName string) bool {
	return slices.Contains(AllowedImageExtensions, strings.ToLower(filepath.Ext(fileName)))
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if len(email) > MaxEmailLength {
		return ErrInvalidEmail
	}

	// reject display-name forms like "Ann <a@x.io>"
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validateNewPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func validateName(name *string) error {
	if name != nil && utf8.RuneCountInString(*name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
