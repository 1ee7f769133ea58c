// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers (HTTP and gRPC) that the
// server package runs.
package handler

import (
	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/handler/grpc"
	"github.com/mani62/Blog-Backend/internal/handler/http"
	"github.com/mani62/Blog-Backend/internal/logger"
	"github.com/mani62/Blog-Backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport with a configured
// address. db backs the gRPC health status and may be nil.
func NewHandlers(services *service.Services, db grpc.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, cfg.Storage.Images, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(db, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
