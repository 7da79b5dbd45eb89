// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service. Its serving status
// follows the database health check.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	defaultCheckInterval = 10 * time.Second
	checkTimeout         = 2 * time.Second
)

// Handler is the root gRPC transport handler.
//
// It owns a health server whose overall status is refreshed from
// [service.HealthService] while Run is active.
type Handler struct {
	services *service.Services
	health   *health.Server

	checkInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as NOT_SERVING
// until the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		checkInterval: defaultCheckInterval,
		logger:        logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Run refreshes the health status every check interval until ctx is
// cancelled, then marks every service as NOT_SERVING.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	h.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			h.refresh(ctx)
		case <-ctx.Done():
			h.health.Shutdown()
			return
		}
	}
}

func (h *Handler) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.refresh").Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)
}
