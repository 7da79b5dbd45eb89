// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "fanout"

type amqpPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	logger *logger.Logger
}

// NewAMQPPublisher dials cfg.AMQPURL and declares a durable fanout exchange
// named cfg.Exchange.
func NewAMQPPublisher(cfg config.Events, logger *logger.Logger) (Publisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Err(err).Str("func", "NewAMQPPublisher").Msg("error connecting message broker")
		return nil, fmt.Errorf("%w: %w", ErrBrokerUnavailable, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		logger.Err(err).Str("func", "NewAMQPPublisher").Msg("error opening broker channel")
		return nil, fmt.Errorf("%w: open channel: %w", ErrBrokerUnavailable, err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		logger.Err(err).Str("func", "NewAMQPPublisher").Str("exchange", cfg.Exchange).Msg("error declaring exchange")
		return nil, fmt.Errorf("%w: declare exchange %q: %w", ErrBrokerUnavailable, cfg.Exchange, err)
	}
	logger.Info().Str("func", "NewAMQPPublisher").Str("exchange", cfg.Exchange).Msg("event exchange declared")

	return &amqpPublisher{conn: conn, ch: ch, exchange: cfg.Exchange, logger: logger}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event models.Event) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	if err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func newPublishing(event models.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("%w: encode: %w", ErrPublishingEvent, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}
