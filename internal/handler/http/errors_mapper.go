// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/service"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/internal/validators"
)

// errorStatusMap is scanned in no particular order, so errors that wrap
// several targets must map them all to the same status.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidMultipart: http.StatusBadRequest,
	ErrBodyTooLarge:     http.StatusRequestEntityTooLarge,

	validators.ErrValidation:  http.StatusBadRequest,
	crypto.ErrPasswordTooLong: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	crypto.ErrInvalidToken:        http.StatusUnauthorized,

	service.ErrPostNotFoundOrForbidden: http.StatusNotFound,
	service.ErrPostNotFound:            http.StatusNotFound,
	service.ErrUserNotFound:            http.StatusNotFound,

	service.ErrDuplicateEmail:   http.StatusConflict,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrImageUploadFailed:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientMessage returns the text sent in the error body. Internal failures
// never leak their cause.
func clientMessage(err error, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	case errors.Is(err, validators.ErrValidation):
		return validationMessage(err)
	}

	for _, known := range []error{
		service.ErrInvalidCredentials,
		service.ErrUnauthorized,
		service.ErrPostNotFoundOrForbidden,
		service.ErrPostNotFound,
		service.ErrUserNotFound,
		service.ErrDuplicateEmail,
		crypto.ErrPasswordTooLong,
		ErrInvalidJSON,
		ErrInvalidMultipart,
		ErrBodyTooLarge,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return http.StatusText(status)
}

// validationMessage strips the service wrapping from err so the body reads
// "validation failed: title is required".
func validationMessage(err error) string {
	for next := errors.Unwrap(err); next != nil && next != validators.ErrValidation; next = errors.Unwrap(next) {
		err = next
	}
	return err.Error()
}

// writeServiceError logs err and writes the mapped status with a JSON body.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, clientMessage(err, status), status)
}
