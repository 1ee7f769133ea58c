// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/service"
	"github.com/mani62/Blog-Backend/internal/store"
	"github.com/mani62/Blog-Backend/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("error during post validation before saving: %w", validators.ErrEmptyTitle),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed: title is required",
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "expired token",
			err:        crypto.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized",
		},
		{
			name:       "foreign or missing post",
			err:        service.ErrPostNotFoundOrForbidden,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Unauthorized or post not found",
		},
		{
			name:       "duplicate email wrapping store sentinel",
			err:        fmt.Errorf("%w: %w", service.ErrDuplicateEmail, store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    "Email already in use",
		},
		{
			name:       "body too large",
			err:        fmt.Errorf("%w: %w", ErrBodyTooLarge, errors.New("http: request body too large")),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "Request body too large",
		},
		{
			name:       "store failure does not leak",
			err:        fmt.Errorf("post search failed: %w: %w", store.ErrScanningRow, errors.New("pq: secret detail")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, clientMessage(tt.err, status))
		})
	}
}
