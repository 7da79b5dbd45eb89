// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/store"
)

type healthService struct {
	db store.HealthChecker
}

func NewHealthService(db store.HealthChecker) HealthService {
	return &healthService{db: db}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
