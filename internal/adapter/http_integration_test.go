// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-lending/internal/config"
	handlerhttp "github.com/MKhiriev/go-book-lending/internal/handler/http"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/service"
	"github.com/MKhiriev/go-book-lending/internal/store"
	"github.com/MKhiriev/go-book-lending/models"
)

// newLendingServer runs the real router over the in-memory store.
func newLendingServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:   "integration-secret",
			TokenIssuer:    "go-book-lending",
			TokenDuration:  time.Hour,
			Environment:    config.EnvironmentDevelopment,
			AuthGuardMode:  config.AuthGuardStrict,
			UpdateBookAuth: config.UpdateBookAuthRequired,
			Greeting:       "A11 server is working",
			Version:        "test",
		},
		Storage: config.Storage{DB: config.DB{DSN: "memory://"}},
		Server:  config.Server{AllowedOrigins: []string{"*"}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)

	services, err := service.NewServices(storages, nil, nil, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, nil, cfg, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestAdapter_AgainstLendingServer(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, newLendingServer(t).URL)

	quantity := int64(3)
	added, err := a.AddBook(ctx, models.Book{Title: "Dune", Category: "Sci-Fi", Quantity: &quantity})
	require.NoError(t, err)
	require.True(t, added.Acknowledged)
	bookID := added.InsertedID

	_, err = a.UpdateBook(ctx, bookID, models.Book{Title: "Dune"})
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, a.Login(ctx, models.Identity{Email: "a@x.com"}))

	borrowed, err := a.Borrow(ctx, models.BorrowRecord{Email: "a@x.com", BookID: bookID})
	require.NoError(t, err)

	_, err = a.Borrow(ctx, models.BorrowRecord{Email: "a@x.com", BookID: bookID})
	require.ErrorIs(t, err, ErrAlreadyBorrowed)

	book, err := a.GetBook(ctx, bookID)
	require.NoError(t, err)
	require.NotNil(t, book)
	require.NotNil(t, book.Quantity)
	assert.Equal(t, int64(2), *book.Quantity)

	records, err := a.Borrowed(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, borrowed.InsertedID, records[0].ID)

	_, err = a.Borrowed(ctx, "b@x.com")
	require.ErrorIs(t, err, ErrUnauthorized)

	returned, err := a.Return(ctx, models.ReturnRequest{ID: borrowed.InsertedID, BookID: bookID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), returned.DeletedCount)

	books, err := a.ListBooksByCategory(ctx, "Sci-Fi")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, int64(3), *books[0].Quantity)

	missing, err := a.GetBook(ctx, "0191f0c8-0000-7000-8000-00000000ffff")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, a.Logout(ctx))
	_, err = a.Borrowed(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrUnauthorized)
}
