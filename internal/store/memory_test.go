// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/models"
)

func newMemoryRepos(t *testing.T) (BookRepository, BorrowRepository) {
	t.Helper()
	is := is.New(t)

	mem, err := NewMemoryStore()
	is.NoErr(err)

	return NewMemoryBookRepository(mem, logger.Nop()), NewMemoryBorrowRepository(mem, logger.Nop())
}

func TestMemoryBookRepository_InsertGet(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	res, err := books.Insert(ctx, models.Book{
		ID:         testBookID,
		Title:      "Dune",
		Category:   "Sci-Fi",
		Quantity:   ptr(int64(3)),
		Attributes: models.Attributes{"pages": json.RawMessage(`412`)},
	})
	is.NoErr(err)
	is.Equal(res, models.InsertResult{Acknowledged: true, InsertedID: testBookID})

	got, err := books.GetByID(ctx, testBookID)
	is.NoErr(err)
	is.True(got != nil)
	is.Equal(got.Title, "Dune")
	is.Equal(*got.Quantity, int64(3))
	is.Equal(string(got.Attributes["pages"]), "412")

	missing, err := books.GetByID(ctx, "0191f0c8-0000-7000-8000-0000000000ff")
	is.NoErr(err)
	is.True(missing == nil)
}

func TestMemoryBookRepository_InsertDuplicateID(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	_, err := books.Insert(ctx, models.Book{ID: testBookID})
	is.NoErr(err)

	_, err = books.Insert(ctx, models.Book{ID: testBookID})
	is.True(errors.Is(err, ErrDuplicate))
}

func TestMemoryBookRepository_ReturnedBooksAreCopies(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	_, err := books.Insert(ctx, models.Book{ID: testBookID, Quantity: ptr(int64(1))})
	is.NoErr(err)

	got, err := books.GetByID(ctx, testBookID)
	is.NoErr(err)
	*got.Quantity = 100

	again, err := books.GetByID(ctx, testBookID)
	is.NoErr(err)
	is.Equal(*again.Quantity, int64(1))
}

func TestMemoryBookRepository_ListByCategory(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	for i, category := range []string{"History", "history", "", "History"} {
		id := "0191f0c8-0000-7000-8000-00000000000" + string(rune('1'+i))
		_, err := books.Insert(ctx, models.Book{ID: id, Category: category})
		is.NoErr(err)
	}

	history, err := books.ListByCategory(ctx, "History")
	is.NoErr(err)
	is.Equal(len(history), 2)

	lower, err := books.ListByCategory(ctx, "history")
	is.NoErr(err)
	is.Equal(len(lower), 1)

	none, err := books.ListByCategory(ctx, "")
	is.NoErr(err)
	is.Equal(len(none), 1)

	unknown, err := books.ListByCategory(ctx, "Poetry")
	is.NoErr(err)
	is.True(unknown != nil)
	is.Equal(len(unknown), 0)
}

func TestMemoryBookRepository_Upsert(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	_, err := books.Insert(ctx, models.Book{ID: testBookID, Title: "Dune", Quantity: ptr(int64(5))})
	is.NoErr(err)

	res, err := books.Upsert(ctx, testBookID, models.BookUpdate{Title: "Dune (2nd ed.)", Rating: 5})
	is.NoErr(err)
	is.Equal(res.MatchedCount, int64(1))
	is.Equal(res.ModifiedCount, int64(1))
	is.True(res.UpsertedID == nil)

	res, err = books.Upsert(ctx, testBookID, models.BookUpdate{Title: "Dune (2nd ed.)", Rating: 5})
	is.NoErr(err)
	is.Equal(res.MatchedCount, int64(1))
	is.Equal(res.ModifiedCount, int64(0)) // same values

	got, err := books.GetByID(ctx, testBookID)
	is.NoErr(err)
	is.Equal(got.Title, "Dune (2nd ed.)")
	is.Equal(*got.Quantity, int64(5)) // quantity untouched

	newID := "0191f0c8-0000-7000-8000-0000000000b2"
	res, err = books.Upsert(ctx, newID, models.BookUpdate{Title: "Fresh"})
	is.NoErr(err)
	is.Equal(res.UpsertedCount, int64(1))
	is.Equal(*res.UpsertedID, newID)

	created, err := books.GetByID(ctx, newID)
	is.NoErr(err)
	is.True(created.Quantity == nil)
}

func TestMemoryBookRepository_AdjustQuantity(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	_, err := books.Insert(ctx, models.Book{ID: testBookID, Quantity: ptr(int64(0))})
	is.NoErr(err)

	is.NoErr(books.AdjustQuantity(ctx, testBookID, -1))
	got, _ := books.GetByID(ctx, testBookID)
	is.Equal(*got.Quantity, int64(-1)) // no lower bound

	is.NoErr(books.AdjustQuantity(ctx, "0191f0c8-0000-7000-8000-0000000000ff", 1))
}

func TestMemoryBookRepository_AdjustQuantityConcurrent(t *testing.T) {
	is := is.New(t)
	books, _ := newMemoryRepos(t)
	ctx := testContext()

	_, err := books.Insert(ctx, models.Book{ID: testBookID, Quantity: ptr(int64(0))})
	is.NoErr(err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = books.AdjustQuantity(ctx, testBookID, 1)
		}()
	}
	wg.Wait()

	got, _ := books.GetByID(ctx, testBookID)
	is.Equal(*got.Quantity, int64(50))
}

func TestMemoryBorrowRepository(t *testing.T) {
	is := is.New(t)
	_, borrows := newMemoryRepos(t)
	ctx := testContext()

	ok, err := borrows.Exists(ctx, testEmail, testBookID)
	is.NoErr(err)
	is.True(!ok)

	record := models.BorrowRecord{ID: testRecordID, BookID: testBookID, Email: testEmail}
	_, err = borrows.Insert(ctx, record)
	is.NoErr(err)

	ok, err = borrows.Exists(ctx, testEmail, testBookID)
	is.NoErr(err)
	is.True(ok)

	record.ID = "0191f0c8-0000-7000-8000-0000000000a2"
	_, err = borrows.Insert(ctx, record)
	is.True(errors.Is(err, ErrDuplicate))

	mine, err := borrows.ListByIdentity(ctx, testEmail)
	is.NoErr(err)
	is.Equal(len(mine), 1)

	theirs, err := borrows.ListByIdentity(ctx, "other@example.com")
	is.NoErr(err)
	is.Equal(len(theirs), 0)

	res, err := borrows.Delete(ctx, testRecordID)
	is.NoErr(err)
	is.Equal(res.DeletedCount, int64(1))

	res, err = borrows.Delete(ctx, testRecordID)
	is.NoErr(err)
	is.Equal(res.DeletedCount, int64(0))

	ok, err = borrows.Exists(ctx, testEmail, testBookID)
	is.NoErr(err)
	is.True(!ok)
}
