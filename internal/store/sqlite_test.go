// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

// TestBackends runs the same scenario against every backend that needs no
// external service.
func TestBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) *Storages{
		"sqlite": newSQLiteStorages,
		"memory": func(t *testing.T) *Storages {
			s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "memory://"}}, logger.Nop())
			require.NoError(t, err)
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := testContext()

			require.NoError(t, s.Ping(ctx))

			_, err := s.Books.Insert(ctx, models.Book{
				ID:         testBookID,
				CoverImage: "dune.png",
				Title:      "Dune",
				AuthorName: "Frank Herbert",
				Category:   "Sci-Fi",
				Rating:     4.5,
				Quantity:   ptr(int64(3)),
				Attributes: models.Attributes{"pages": []byte(`412`)},
			})
			require.NoError(t, err)

			got, err := s.Books.GetByID(ctx, testBookID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "dune.png", got.CoverImage)
			assert.Equal(t, "Frank Herbert", got.AuthorName)
			assert.Equal(t, 4.5, got.Rating)
			assert.JSONEq(t, `412`, string(got.Attributes["pages"]))

			sciFi, err := s.Books.ListByCategory(ctx, "Sci-Fi")
			require.NoError(t, err)
			assert.Len(t, sciFi, 1)

			lower, err := s.Books.ListByCategory(ctx, "sci-fi")
			require.NoError(t, err)
			assert.Empty(t, lower)

			// borrow
			_, err = s.Borrows.Insert(ctx, models.BorrowRecord{ID: testRecordID, BookID: testBookID, Email: testEmail})
			require.NoError(t, err)
			require.NoError(t, s.Books.AdjustQuantity(ctx, testBookID, -1))

			_, err = s.Borrows.Insert(ctx, models.BorrowRecord{ID: "0191f0c8-0000-7000-8000-0000000000a2", BookID: testBookID, Email: testEmail})
			assert.ErrorIs(t, err, ErrDuplicate)

			got, err = s.Books.GetByID(ctx, testBookID)
			require.NoError(t, err)
			assert.Equal(t, int64(2), *got.Quantity)

			// return
			require.NoError(t, s.Books.AdjustQuantity(ctx, testBookID, 1))
			del, err := s.Borrows.Delete(ctx, testRecordID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), del.DeletedCount)

			got, err = s.Books.GetByID(ctx, testBookID)
			require.NoError(t, err)
			assert.Equal(t, int64(3), *got.Quantity)

			// rewriting the same values matches without modifying
			same := got.Update()
			res, err := s.Books.Upsert(ctx, testBookID, same)
			require.NoError(t, err)
			assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1}, res)

			same.Rating = 5
			res, err = s.Books.Upsert(ctx, testBookID, same)
			require.NoError(t, err)
			assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

			// upsert of an unknown id creates a book without quantity
			newID := "0191f0c8-0000-7000-8000-0000000000b2"
			res, err = s.Books.Upsert(ctx, newID, models.BookUpdate{Title: "Fresh"})
			require.NoError(t, err)
			assert.Equal(t, int64(1), res.UpsertedCount)

			created, err := s.Books.GetByID(ctx, newID)
			require.NoError(t, err)
			assert.Nil(t, created.Quantity)

			require.NoError(t, s.Books.AdjustQuantity(ctx, newID, 1))
			created, err = s.Books.GetByID(ctx, newID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), *created.Quantity)

			all, err := s.Books.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mongodb://localhost"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
