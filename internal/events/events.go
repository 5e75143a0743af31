// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes lending domain events to a message broker.
//
// Publication is optional: with no broker URL configured the server uses
// the no-op publisher. Publish failures never fail the request that caused
// the event; callers log them and move on.
package events

import (
	"context"
	"time"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/models"
)

// Routing keys of lending events.
const (
	RoutingKeyBorrowed = "lending.borrowed"
	RoutingKeyReturned = "lending.returned"
)

// EventVersion is the schema version stamped on every event.
const EventVersion = "1.0.0"

// Event is the envelope of every published message.
type Event struct {
	EventID       string         `json:"event_id"`
	EventType     string         `json:"event_type"`
	EventVersion  string         `json:"event_version"`
	Timestamp     string         `json:"timestamp"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Payload       map[string]any `json:"payload"`
}

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Publisher emits lending events.
type Publisher interface {
	// PublishBorrowed announces a stored borrow record.
	PublishBorrowed(ctx context.Context, record models.BorrowRecord) error

	// PublishReturned announces a closed borrow record.
	PublishReturned(ctx context.Context, request models.ReturnRequest) error

	// Close releases the broker connection.
	Close() error
}

// NewPublisher returns an AMQP publisher when cfg names a broker and a
// no-op publisher otherwise.
func NewPublisher(ctx context.Context, cfg config.Events, log *logger.Logger) (Publisher, error) {
	if cfg.AMQPURL == "" {
		log.Info().Msg("event publication disabled")
		return NewNopPublisher(), nil
	}

	return NewAMQPPublisher(ctx, cfg, log)
}

func borrowedPayload(record models.BorrowRecord) map[string]any {
	return map[string]any{
		"recordID": record.ID,
		"bookID":   record.BookID,
		"email":    record.Email,
	}
}

func returnedPayload(request models.ReturnRequest) map[string]any {
	return map[string]any{
		"recordID": request.ID,
		"bookID":   request.BookID,
	}
}

func timestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
