// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/validators"
)

const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-positive requestTimeout falls
// back to 30 seconds.
func NewHandler(services *service.Services, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewStructValidator(),
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
