// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// imagesDir is served under imagesPublicPath when images are stored
	// locally. Both are empty for the S3 backend.
	imagesDir        string
	imagesPublicPath string
	maxUploadSize    int64

	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, images config.Images, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	h := &Handler{
		services:       services,
		maxUploadSize:  images.MaxUploadSize,
		requestTimeout: server.RequestTimeout,
		registry:       registry,
		metrics:        newHTTPMetrics(registry),
		logger:         logger,
	}
	if !images.S3.Enabled() {
		h.imagesDir = images.Dir
		h.imagesPublicPath = images.PublicPath
	}

	logger.Info().Msg("http handler created")
	return h
}
