// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/models"
)

const (
	indexID        = "id"
	indexCategory  = "category"
	indexEmail     = "email"
	indexEmailBook = "email_book"
)

// MemoryStore is a go-memdb database holding the books and borrows tables.
// Write transactions are serialised by memdb, which makes every repository
// method atomic.
type MemoryStore struct {
	db *memdb.MemDB
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() (*MemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			booksTable: {
				Name: booksTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexCategory: {
						Name:         indexCategory,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Category"},
					},
				},
			},
			borrowsTable: {
				Name: borrowsTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexEmailBook: {
						Name:   indexEmailBook,
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "Email"},
								&memdb.StringFieldIndex{Field: "BookID"},
							},
						},
					},
					indexEmail: {
						Name:    indexEmail,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
		},
	}

	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid memdb schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}

	return &MemoryStore{db: db}, nil
}

// bookRow is the stored form of a book. Objects in memdb must never be
// mutated after insertion, so rows hold values only.
type bookRow struct {
	ID          string
	CoverImage  string
	Title       string
	AuthorName  string
	Category    string
	Rating      float64
	Quantity    int64
	HasQuantity bool
	Attributes  models.Attributes
}

func (row bookRow) update() models.BookUpdate {
	return models.BookUpdate{
		CoverImage: row.CoverImage,
		Title:      row.Title,
		AuthorName: row.AuthorName,
		Category:   row.Category,
		Rating:     row.Rating,
	}
}

func newBookRow(b models.Book) bookRow {
	row := bookRow{
		ID:         b.ID,
		CoverImage: b.CoverImage,
		Title:      b.Title,
		AuthorName: b.AuthorName,
		Category:   b.Category,
		Rating:     b.Rating,
		Attributes: copyAttributes(b.Attributes),
	}
	if b.Quantity != nil {
		row.Quantity = *b.Quantity
		row.HasQuantity = true
	}

	return row
}

func (r bookRow) book() models.Book {
	b := models.Book{
		ID:         r.ID,
		CoverImage: r.CoverImage,
		Title:      r.Title,
		AuthorName: r.AuthorName,
		Category:   r.Category,
		Rating:     r.Rating,
		Attributes: copyAttributes(r.Attributes),
	}
	if r.HasQuantity {
		q := r.Quantity
		b.Quantity = &q
	}

	return b
}

type borrowRow struct {
	ID         string
	BookID     string
	Email      string
	Attributes models.Attributes
}

func copyAttributes(a models.Attributes) models.Attributes {
	if len(a) == 0 {
		return nil
	}

	out := make(models.Attributes, len(a))
	for k, v := range a {
		out[k] = append([]byte(nil), v...)
	}

	return out
}

// memoryBookRepository implements [BookRepository] on a [MemoryStore].
type memoryBookRepository struct {
	store  *MemoryStore
	logger *logger.Logger
}

// NewMemoryBookRepository constructs a [BookRepository] backed by store.
func NewMemoryBookRepository(store *MemoryStore, logger *logger.Logger) BookRepository {
	return &memoryBookRepository{store: store, logger: logger}
}

func (r *memoryBookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(booksTable, indexID)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	books := make([]models.Book, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, obj.(bookRow).book())
	}

	return books, nil
}

// ListByCategory uses the category index for non-empty categories. Books
// without a category are not in that index, so the empty category is
// answered with a scan.
func (r *memoryBookRepository) ListByCategory(ctx context.Context, category string) ([]models.Book, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	var (
		it  memdb.ResultIterator
		err error
	)
	if category == "" {
		it, err = txn.Get(booksTable, indexID)
	} else {
		it, err = txn.Get(booksTable, indexCategory, category)
	}
	if err != nil {
		return nil, fmt.Errorf("listing books by category: %w", err)
	}

	books := make([]models.Book, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		row := obj.(bookRow)
		if row.Category != category {
			continue
		}
		books = append(books, row.book())
	}

	return books, nil
}

func (r *memoryBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(booksTable, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("searching book by ID: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	book := raw.(bookRow).book()
	return &book, nil
}

func (r *memoryBookRepository) Insert(ctx context.Context, book models.Book) (models.InsertResult, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(booksTable, indexID, book.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("storing book: %w", err)
	}
	if existing != nil {
		return models.InsertResult{}, fmt.Errorf("%w: book %s", ErrDuplicate, book.ID)
	}

	if err = txn.Insert(booksTable, newBookRow(book)); err != nil {
		return models.InsertResult{}, fmt.Errorf("storing book: %w", err)
	}
	txn.Commit()

	return models.InsertResult{Acknowledged: true, InsertedID: book.ID}, nil
}

func (r *memoryBookRepository) Upsert(ctx context.Context, id string, update models.BookUpdate) (models.UpdateResult, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(booksTable, indexID, id)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("updating book: %w", err)
	}

	var row bookRow
	if raw != nil {
		row = raw.(bookRow)
		if row.update() == update {
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
		}
		row.Attributes = copyAttributes(row.Attributes)
	} else {
		row = bookRow{ID: id}
	}

	row.CoverImage = update.CoverImage
	row.Title = update.Title
	row.AuthorName = update.AuthorName
	row.Category = update.Category
	row.Rating = update.Rating

	if err = txn.Insert(booksTable, row); err != nil {
		return models.UpdateResult{}, fmt.Errorf("updating book: %w", err)
	}
	txn.Commit()

	if raw != nil {
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}

	upsertedID := id
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upsertedID}, nil
}

func (r *memoryBookRepository) AdjustQuantity(ctx context.Context, id string, delta int64) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(booksTable, indexID, id)
	if err != nil {
		return fmt.Errorf("adjusting quantity: %w", err)
	}
	if raw == nil {
		logger.FromContext(ctx).Warn().Str("func", "*memoryBookRepository.AdjustQuantity").Str("book_id", id).Msg("no book matched quantity adjustment")
		return nil
	}

	row := raw.(bookRow)
	row.Quantity += delta
	row.HasQuantity = true

	if err = txn.Insert(booksTable, row); err != nil {
		return fmt.Errorf("adjusting quantity: %w", err)
	}
	txn.Commit()

	return nil
}

// memoryBorrowRepository implements [BorrowRepository] on a [MemoryStore].
type memoryBorrowRepository struct {
	store  *MemoryStore
	logger *logger.Logger
}

// NewMemoryBorrowRepository constructs a [BorrowRepository] backed by store.
func NewMemoryBorrowRepository(store *MemoryStore, logger *logger.Logger) BorrowRepository {
	return &memoryBorrowRepository{store: store, logger: logger}
}

func (r *memoryBorrowRepository) Exists(ctx context.Context, email, bookID string) (bool, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(borrowsTable, indexEmailBook, email, bookID)
	if err != nil {
		return false, fmt.Errorf("checking active borrow: %w", err)
	}

	return raw != nil, nil
}

// Insert enforces the (email, bookID) uniqueness itself: memdb overwrites
// secondary unique index entries instead of rejecting them.
func (r *memoryBorrowRepository) Insert(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(borrowsTable, indexEmailBook, record.Email, record.BookID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("storing borrow record: %w", err)
	}
	if existing != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %s already holds %s", ErrDuplicate, record.Email, record.BookID)
	}

	row := borrowRow{
		ID:         record.ID,
		BookID:     record.BookID,
		Email:      record.Email,
		Attributes: copyAttributes(record.Attributes),
	}
	if err = txn.Insert(borrowsTable, row); err != nil {
		return models.InsertResult{}, fmt.Errorf("storing borrow record: %w", err)
	}
	txn.Commit()

	return models.InsertResult{Acknowledged: true, InsertedID: record.ID}, nil
}

func (r *memoryBorrowRepository) ListByIdentity(ctx context.Context, email string) ([]models.BorrowRecord, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	records := make([]models.BorrowRecord, 0)
	if email == "" {
		return records, nil
	}

	it, err := txn.Get(borrowsTable, indexEmail, email)
	if err != nil {
		return nil, fmt.Errorf("listing borrow records: %w", err)
	}

	for obj := it.Next(); obj != nil; obj = it.Next() {
		row := obj.(borrowRow)
		records = append(records, models.BorrowRecord{
			ID:         row.ID,
			BookID:     row.BookID,
			Email:      row.Email,
			Attributes: copyAttributes(row.Attributes),
		})
	}

	return records, nil
}

func (r *memoryBorrowRepository) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	deleted, err := txn.DeleteAll(borrowsTable, indexID, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("deleting borrow record: %w", err)
	}
	txn.Commit()

	return models.DeleteResult{Acknowledged: true, DeletedCount: int64(deleted)}, nil
}
