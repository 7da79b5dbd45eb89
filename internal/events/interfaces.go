// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes post activity (new posts, likes, comments) to a
// message broker for consumers outside the API.
package events

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/events_publisher_mock.go -package=mock

// Publisher delivers one event to the broker.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}
