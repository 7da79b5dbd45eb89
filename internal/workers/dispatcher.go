// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/dev-connector/internal/events"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrEventQueueFull is returned by Dispatch when the queue has no room left.
var ErrEventQueueFull = errors.New("event queue is full")

const (
	publishTimeout = 5 * time.Second
	drainTimeout   = 10 * time.Second
)

// EventDispatcher decouples request handling from the broker: Dispatch only
// enqueues, and Run publishes queued events one at a time.
type EventDispatcher struct {
	queue     chan models.Event
	publisher events.Publisher
	dropped   prometheus.Counter

	logger *logger.Logger
}

// NewEventDispatcher creates a dispatcher with room for size events.
// dropped is incremented for every event rejected by a full queue.
func NewEventDispatcher(publisher events.Publisher, size int, dropped prometheus.Counter, logger *logger.Logger) *EventDispatcher {
	if size < 1 {
		size = 1
	}

	return &EventDispatcher{
		queue:     make(chan models.Event, size),
		publisher: publisher,
		dropped:   dropped,
		logger:    logger,
	}
}

// Dispatch enqueues event without blocking.
func (d *EventDispatcher) Dispatch(event models.Event) error {
	select {
	case d.queue <- event:
		return nil
	default:
		d.dropped.Inc()
		d.logger.Warn().Str("func", "EventDispatcher.Dispatch").Str("type", string(event.Type)).
			Str("post_id", event.PostID).Msg("event queue is full, dropping event")
		return ErrEventQueueFull
	}
}

// Run publishes events until ctx is cancelled, then drains what is still
// queued within drainTimeout.
func (d *EventDispatcher) Run(ctx context.Context) {
	d.logger.Info().Str("func", "EventDispatcher.Run").Msg("event dispatcher started")

	for {
		select {
		case event := <-d.queue:
			d.publish(context.WithoutCancel(ctx), event)
		case <-ctx.Done():
			d.drain()
			d.logger.Info().Str("func", "EventDispatcher.Run").Msg("event dispatcher stopped")
			return
		}
	}
}

func (d *EventDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-d.queue:
			d.publish(ctx, event)
		default:
			return
		}
	}
}

func (d *EventDispatcher) publish(ctx context.Context, event models.Event) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Err(err).Str("func", "EventDispatcher.publish").Str("type", string(event.Type)).
			Str("post_id", event.PostID).Msg("failed to publish event")
	}
}
