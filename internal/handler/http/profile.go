// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/service"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	user, err := h.services.ProfileService.GetMe(ctx, principal)
	if err != nil {
		h.writeServiceError(w, r, err, "profile lookup failed")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing profile response")
	}
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	var request models.UpdateProfileRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeServiceError(w, r, err, "invalid profile body")
		return
	}

	user, err := h.services.ProfileService.UpdateMe(ctx, principal, request)
	if err != nil {
		h.writeServiceError(w, r, err, "profile update failed")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing profile response")
	}
}
