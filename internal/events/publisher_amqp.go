// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

const (
	exchangeType = "topic"

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 5 * time.Second
	confirmTimeout = 5 * time.Second
)

var (
	ErrNotAcknowledged = errors.New("event not acknowledged by broker")
	ErrConfirmTimeout  = errors.New("broker confirmation timeout")
	ErrConfirmsClosed  = errors.New("broker confirmation channel closed")
)

// amqpChannel is the subset of [amqp.Channel] the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes events to a topic exchange with publisher
// confirms. Publishes are serialized so that each confirmation pairs with
// the message that caused it.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	confirms <-chan amqp.Confirmation
	exchange string

	mu sync.Mutex

	ids            *utils.UUIDGenerator
	now            func() time.Time
	initialBackoff time.Duration
	confirmTimeout time.Duration

	logger *logger.Logger
}

// NewAMQPPublisher dials the broker, declares a durable topic exchange and
// enables publisher confirms.
func NewAMQPPublisher(ctx context.Context, cfg config.Events, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		cfg.Exchange,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	if err = channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	confirms := channel.NotifyPublish(make(chan amqp.Confirmation, 1))

	log.Info().Str("exchange", cfg.Exchange).Msg("connected to broker")

	p := newAMQPPublisher(channel, confirms, cfg.Exchange, log)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(channel amqpChannel, confirms <-chan amqp.Confirmation, exchange string, log *logger.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		channel:        channel,
		confirms:       confirms,
		exchange:       exchange,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		initialBackoff: initialBackoff,
		confirmTimeout: confirmTimeout,
		logger:         log,
	}
}

func (p *AMQPPublisher) PublishBorrowed(ctx context.Context, record models.BorrowRecord) error {
	return p.publish(ctx, RoutingKeyBorrowed, borrowedPayload(record))
}

func (p *AMQPPublisher) PublishReturned(ctx context.Context, request models.ReturnRequest) error {
	return p.publish(ctx, RoutingKeyReturned, returnedPayload(request))
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, payload map[string]any) error {
	event := Event{
		EventID:       p.ids.Generate(),
		EventType:     routingKey,
		EventVersion:  EventVersion,
		Timestamp:     timestamp(p.now()),
		CorrelationID: utils.GetTraceIDFromContext(ctx),
		Payload:       payload,
	}

	return p.publishWithRetry(ctx, routingKey, event)
}

// publishWithRetry publishes event with exponential backoff between
// attempts.
func (p *AMQPPublisher) publishWithRetry(ctx context.Context, routingKey string, event Event) error {
	log := logger.FromContext(ctx).With().
		Str("func", "AMQPPublisher.publishWithRetry").
		Str("event_id", event.EventID).
		Str("routing_key", routingKey).
		Logger()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	backoff := p.initialBackoff
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff = min(backoff*2, maxBackoff)
			}
		}

		lastErr = p.publishOnce(ctx, routingKey, event, body)
		if lastErr == nil {
			log.Debug().Msg("event published")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		log.Warn().Err(lastErr).Int("attempt", attempt+1).Msg("event publish failed, retrying")
	}

	return fmt.Errorf("failed to publish event after %d attempts: %w", maxRetries, lastErr)
}

func (p *AMQPPublisher) publishOnce(ctx context.Context, routingKey string, event Event, body []byte) error {
	err := p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.now(),
			MessageId:    event.EventID,
			Body:         body,
			Headers: amqp.Table{
				"event_type":    event.EventType,
				"event_version": event.EventVersion,
			},
		},
	)
	if err != nil {
		return err
	}

	select {
	case confirm, ok := <-p.confirms:
		if !ok {
			return ErrConfirmsClosed
		}
		if !confirm.Ack {
			return ErrNotAcknowledged
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.confirmTimeout):
		return ErrConfirmTimeout
	}
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error().Err(err).Msg("failed to close broker channel")
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close broker connection: %w", err)
		}
	}

	return nil
}
