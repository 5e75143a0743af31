// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-book-lending/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=LendingServiceWrapper

// CatalogService exposes the book catalog.
type CatalogService interface {
	ListAll(ctx context.Context) ([]models.Book, error)
	ListByCategory(ctx context.Context, category string) ([]models.Book, error)
	// GetByID returns nil when no book has id. A malformed id fails with
	// ErrInvalidID.
	GetByID(ctx context.Context, id string) (*models.Book, error)
	AddBook(ctx context.Context, book models.Book) (models.InsertResult, error)
	UpdateBook(ctx context.Context, id string, update models.BookUpdate) (models.UpdateResult, error)
}

// LendingService runs the borrow and return workflows.
type LendingService interface {
	Borrow(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error)
	Return(ctx context.Context, request models.ReturnRequest) (models.DeleteResult, error)
	// ListBorrowed returns the active borrows of email. The verified
	// identity carried by ctx must be the same email.
	ListBorrowed(ctx context.Context, email string) ([]models.BorrowRecord, error)
}

type AuthService interface {
	IssueToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetGreeting(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// LendingServiceWrapper defines middleware composition for LendingService.
// Implementations wrap an existing LendingService to add behavior such as
// validation.
type LendingServiceWrapper interface {
	Wrap(LendingService) LendingService
}

// LendingRecorder counts borrow and return outcomes.
type LendingRecorder interface {
	ObserveLending(operation, outcome string)
}

// Pinger reports backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
