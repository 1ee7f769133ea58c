// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			r.Get("/posts", h.listPosts)
			r.Get("/posts/{id}", h.getPost)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/profile/me", h.getMe)
			r.Patch("/profile/me", h.updateMe)
			r.Get("/user/me", h.getMe)

			r.Post("/posts", h.createPost)
			r.Post("/posts/with-image", h.createPostWithImage)
			r.Patch("/posts/{id}", h.updatePost)
			r.Patch("/posts/with-image/{id}", h.updatePostWithImage)
			r.Delete("/posts/{id}", h.deletePost)
		})
	})

	if h.imagesDir != "" && h.imagesPublicPath != "" {
		prefix := strings.TrimSuffix(h.imagesPublicPath, "/")
		files := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(h.imagesDir)))
		router.Get(prefix+"/*", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			files.ServeHTTP(w, r)
		})
	}

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
