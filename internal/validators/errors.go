// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every rule violation below, so callers can
// map the whole family to one response status.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email must be a valid address", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, MaxPasswordBytes)
	ErrNameTooLong      = fmt.Errorf("%w: name must be at most %d characters", ErrValidation, MaxNameLength)
	ErrEmptyTitle       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be at most %d characters", ErrValidation, MaxTitleLength)
	ErrEmptyContent     = fmt.Errorf("%w: content is required", ErrValidation)
	ErrInvalidImageType = fmt.Errorf("%w: only .jpg, .jpeg and .png images are allowed", ErrValidation)
	ErrEmptyImage       = fmt.Errorf("%w: image file is empty", ErrValidation)
)
