// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

type nopPublisher struct {
	logger *logger.Logger
}

// NewNopPublisher returns a publisher that only logs events at debug level.
func NewNopPublisher(logger *logger.Logger) Publisher {
	return &nopPublisher{logger: logger}
}

func (p *nopPublisher) Publish(_ context.Context, event models.Event) error {
	p.logger.Debug().Str("type", string(event.Type)).Str("post_id", event.PostID).Msg("event discarded")
	return nil
}

func (p *nopPublisher) Close() error {
	return nil
}
