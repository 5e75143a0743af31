// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the lending server.
//
// The primary abstraction is [ServerAdapter], which decouples the lendctl
// commands from the REST API. Error values defined in errors.go are mapped
// from HTTP status codes and response texts by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrAlreadyBorrowed], [ErrUnauthorized]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-lending/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the lending server.
// Implementations attach the token cookie to every request once a token is
// known.
type ServerAdapter interface {
	// SetToken stores the token sent as the "token" cookie from now on.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	// Login asks the server to sign identity and stores the token from the
	// response cookie.
	Login(ctx context.Context, identity models.Identity) error

	// Logout asks the server to clear the cookie and forgets the token.
	Logout(ctx context.Context) error

	// ListBooks returns the whole catalog.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// ListBooksByCategory returns the books whose category equals category.
	ListBooksByCategory(ctx context.Context, category string) ([]models.Book, error)

	// GetBook returns the book with id, or nil when there is none.
	GetBook(ctx context.Context, id string) (*models.Book, error)

	// AddBook stores a new book.
	AddBook(ctx context.Context, book models.Book) (models.InsertResult, error)

	// UpdateBook replaces the mutable fields of the book with id.
	UpdateBook(ctx context.Context, id string, book models.Book) (models.UpdateResult, error)

	// Borrow records a borrow. A second borrow of the same book by the same
	// email fails with [ErrAlreadyBorrowed].
	Borrow(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error)

	// Return closes a borrow record.
	Return(ctx context.Context, request models.ReturnRequest) (models.DeleteResult, error)

	// Borrowed lists the active borrows of email. Requires a token for the
	// same email.
	Borrowed(ctx context.Context, email string) ([]models.BorrowRecord, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
