// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/mani62/Blog-Backend/internal/app"
	"github.com/mani62/Blog-Backend/internal/crypto"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken] and, on success, stores the resulting
// [models.Principal] in the request context (see [utils.WithPrincipal])
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 and a JSON error body when:
//   - the header is absent ([utils.ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([utils.ErrInvalidAuthorizationHeader]);
//   - the token has expired ([crypto.ErrTokenExpired], body "token expired");
//   - the token is otherwise invalid.
//
// Each cause is logged differently; the token itself is never logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request rejected: no usable bearer token")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, crypto.ErrTokenExpired):
				log.Info().Err(err).Msg("request rejected: token expired")
				utils.WriteError(w, app.MsgTokenExpired, http.StatusUnauthorized)
			default:
				log.Info().Err(err).Msg("request rejected: invalid token")
				utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			}
			return
		}

		ctx = utils.WithPrincipal(ctx, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
