// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/service"
	"github.com/mani62/Blog-Backend/internal/utils"
	"github.com/mani62/Blog-Backend/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "listing posts failed")
		return
	}

	h.writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, "post lookup failed")
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	var request models.CreatePostRequest
	if err := decodeJSON(w, r, &request); err != nil {
		h.writeServiceError(w, r, err, "invalid post body")
		return
	}

	post, err := h.services.PostService.Create(ctx, principal, request, nil)
	if err != nil {
		h.writeServiceError(w, r, err, "post creation failed")
		return
	}

	h.writeJSON(w, r, post, http.StatusCreated)
}

func (h *Handler) createPostWithImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	form, err := h.parseMultipart(w, r)
	if err != nil {
		h.writeServiceError(w, r, err, "invalid multipart post")
		return
	}
	defer form.Close()

	post, err := h.services.PostService.Create(ctx, principal, form.createRequest(), form.image)
	if err != nil {
		h.writeServiceError(w, r, err, "post creation failed")
		return
	}

	h.writeJSON(w, r, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	var update models.PostUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		h.writeServiceError(w, r, err, "invalid post update body")
		return
	}

	post, err := h.services.PostService.Update(ctx, principal, chi.URLParam(r, "id"), update, nil)
	if err != nil {
		h.writeServiceError(w, r, err, "post update failed")
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) updatePostWithImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	form, err := h.parseMultipart(w, r)
	if err != nil {
		h.writeServiceError(w, r, err, "invalid multipart post update")
		return
	}
	defer form.Close()

	post, err := h.services.PostService.Update(ctx, principal, chi.URLParam(r, "id"), form.update(), form.image)
	if err != nil {
		h.writeServiceError(w, r, err, "post update failed")
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeServiceError(w, r, service.ErrUnauthorized, "no principal in request context")
		return
	}

	result, err := h.services.PostService.Delete(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, "post deletion failed")
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
