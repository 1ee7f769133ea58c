// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeServiceError(w, r, err, "invalid registration body")
		return
	}

	token, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.writeServiceError(w, r, err, "user registration failed")
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing registration response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeServiceError(w, r, err, "invalid login body")
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeServiceError(w, r, err, "user login failed")
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing login response")
	}
}
