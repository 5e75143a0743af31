// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-lending/internal/events"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/metrics"
	"github.com/MKhiriev/go-book-lending/internal/store"
	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

// lendingService is the concrete implementation of LendingService.
//
// Borrow and return are two sequential store calls each, not a
// transaction. When the second call fails the first is not undone: the
// failure is logged at error level with both identifiers and counted as a
// partial outcome.
type lendingService struct {
	books   store.BookRepository
	borrows store.BorrowRepository

	publisher events.Publisher
	recorder  LendingRecorder
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewLendingService(
	books store.BookRepository,
	borrows store.BorrowRepository,
	publisher events.Publisher,
	recorder LendingRecorder,
	logger *logger.Logger,
) LendingService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &lendingService{
		books:     books,
		borrows:   borrows,
		publisher: publisher,
		recorder:  recorder,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Borrow checks for an active borrow of the same book by the same email,
// stores the record and decrements the book quantity.
//
// A second borrow fails with ErrAlreadyBorrowed, whether the pre-check or
// the store's uniqueness guard catches it.
func (l *lendingService) Borrow(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error) {
	bookID, err := parseID(ctx, record.BookID)
	if err != nil {
		return models.InsertResult{}, err
	}
	record.BookID = bookID

	log := logger.FromContext(ctx).With().
		Str("func", "*lendingService.Borrow").
		Str("book_id", record.BookID).
		Logger()

	exists, err := l.borrows.Exists(ctx, record.Email, record.BookID)
	if err != nil {
		l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomeFailure)
		return models.InsertResult{}, fmt.Errorf("active borrow check failed: %w", err)
	}
	if exists {
		l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomeConflict)
		return models.InsertResult{}, ErrAlreadyBorrowed
	}

	record.ID = l.ids.Generate()
	result, err := l.borrows.Insert(ctx, record)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomeConflict)
			return models.InsertResult{}, fmt.Errorf("%w: %w", ErrAlreadyBorrowed, err)
		}
		l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomeFailure)
		return models.InsertResult{}, fmt.Errorf("borrow record insertion failed: %w", err)
	}

	if err = l.books.AdjustQuantity(ctx, record.BookID, -1); err != nil {
		log.Err(err).Str("record_id", record.ID).Msg("borrow record stored but quantity was not decremented")
		l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomePartial)
		return models.InsertResult{}, fmt.Errorf("quantity decrement failed: %w", err)
	}

	l.recorder.ObserveLending(metrics.OperationBorrow, metrics.OutcomeSuccess)

	if err = l.publisher.PublishBorrowed(ctx, record); err != nil {
		log.Warn().Err(err).Str("record_id", record.ID).Msg("borrow event was not published")
	}

	return result, nil
}

// Return increments the book quantity and deletes the borrow record. The
// quantity goes up even when no record matches, and there is no upper
// bound.
func (l *lendingService) Return(ctx context.Context, request models.ReturnRequest) (models.DeleteResult, error) {
	bookID, err := parseID(ctx, request.BookID)
	if err != nil {
		return models.DeleteResult{}, err
	}
	recordID, err := parseID(ctx, request.ID)
	if err != nil {
		return models.DeleteResult{}, err
	}
	request.BookID, request.ID = bookID, recordID

	log := logger.FromContext(ctx).With().
		Str("func", "*lendingService.Return").
		Str("book_id", request.BookID).
		Str("record_id", request.ID).
		Logger()

	if err = l.books.AdjustQuantity(ctx, request.BookID, 1); err != nil {
		l.recorder.ObserveLending(metrics.OperationReturn, metrics.OutcomeFailure)
		return models.DeleteResult{}, fmt.Errorf("quantity increment failed: %w", err)
	}

	result, err := l.borrows.Delete(ctx, request.ID)
	if err != nil {
		log.Err(err).Msg("quantity incremented but borrow record was not deleted")
		l.recorder.ObserveLending(metrics.OperationReturn, metrics.OutcomePartial)
		return models.DeleteResult{}, fmt.Errorf("borrow record deletion failed: %w", err)
	}

	l.recorder.ObserveLending(metrics.OperationReturn, metrics.OutcomeSuccess)

	if result.DeletedCount == 0 {
		log.Warn().Msg("no borrow record matched the return")
		return result, nil
	}

	if err = l.publisher.PublishReturned(ctx, request); err != nil {
		log.Warn().Err(err).Msg("return event was not published")
	}

	return result, nil
}

func (l *lendingService) ListBorrowed(ctx context.Context, email string) ([]models.BorrowRecord, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	if identity.Email != email {
		logger.FromContext(ctx).Warn().
			Str("func", "*lendingService.ListBorrowed").
			Msg("borrow list requested for another identity")
		return nil, ErrForbiddenIdentity
	}

	records, err := l.borrows.ListByIdentity(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing borrow records failed: %w", err)
	}

	return records, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveLending(string, string) {}
