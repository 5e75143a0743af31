// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-book-lending/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// BookRepository is the book catalog.
type BookRepository interface {
	// ListAll returns every book in no particular order.
	ListAll(ctx context.Context) ([]models.Book, error)
	// ListByCategory returns the books whose category equals category
	// exactly. An empty category matches books without one.
	ListByCategory(ctx context.Context, category string) ([]models.Book, error)
	// GetByID returns the book or nil when nothing matches.
	GetByID(ctx context.Context, id string) (*models.Book, error)
	// Insert stores book under book.ID.
	Insert(ctx context.Context, book models.Book) (models.InsertResult, error)
	// Upsert replaces the five mutable fields of the book with id. When no
	// book matches, a new one holding only those fields is created.
	Upsert(ctx context.Context, id string, update models.BookUpdate) (models.UpdateResult, error)
	// AdjustQuantity adds delta to the quantity of the book with id in a
	// single atomic step. There is no lower bound. A missing book is not an
	// error.
	AdjustQuantity(ctx context.Context, id string, delta int64) error
}

// BorrowRepository is the ledger of active borrows.
type BorrowRepository interface {
	// Exists reports whether email holds an active borrow of bookID.
	Exists(ctx context.Context, email, bookID string) (bool, error)
	// Insert stores record under record.ID. A second active borrow of the
	// same book by the same email fails with [ErrDuplicate].
	Insert(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error)
	// ListByIdentity returns the active borrows of email.
	ListByIdentity(ctx context.Context, email string) ([]models.BorrowRecord, error)
	// Delete removes the record with id. DeletedCount is 0 when nothing
	// matched.
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
