// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the blog backend: a
// standard grpc.health.v1 service whose status follows database
// reachability.
package grpc

import (
	"context"

	"github.com/mani62/Blog-Backend/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves grpc.health.v1.Health. Every Check pings the database
// first and updates the overall ("") service status accordingly, so
// Watch subscribers see transitions too.
type Handler struct {
	*health.Server

	db Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The initial status is NOT_SERVING
// until the first successful Check.
func NewHandler(db Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		Server: health.NewServer(),
		db:     db,
		logger: logger,
	}
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	h.refresh(ctx)
	return h.Server.Check(ctx, req)
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
}

func (h *Handler) refresh(ctx context.Context) {
	if h.db == nil {
		h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		return
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}
