// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/models"
)

// bookRepository is the SQL implementation of [BookRepository]. It works
// against PostgreSQL and SQLite; the dialect only changes placeholders and
// error classification.
type bookRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	query, args, err := buildListBooksQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBooks(ctx, "*bookRepository.ListAll", query, args)
}

func (r *bookRepository) ListByCategory(ctx context.Context, category string) ([]models.Book, error) {
	query, args, err := buildListBooksByCategoryQuery(r.db.builder, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBooks(ctx, "*bookRepository.ListByCategory", query, args)
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookQuery(r.db.builder, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	book, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetByID").Str("book_id", id).Msg("error selecting book")
		return nil, r.db.wrapError(ErrScanningRow, err)
	}

	return &book, nil
}

func (r *bookRepository) Insert(ctx context.Context, book models.Book) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(r.db.builder, book)
	if err != nil {
		return models.InsertResult{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bookRepository.Insert").Str("book_id", book.ID).Msg("error inserting book")
		return models.InsertResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: book.ID}, nil
}

// Upsert first updates in place; only when nothing matched does it insert.
// The insert carries an ON CONFLICT clause so that a concurrent insert of
// the same id turns into an update instead of a failure.
func (r *bookRepository) Upsert(ctx context.Context, id string, update models.BookUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(r.db.builder, id, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Upsert").Str("book_id", id).Msg("error updating book")
		return models.UpdateResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	modified, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}
	if modified > 0 {
		return models.UpdateResult{Acknowledged: true, MatchedCount: modified, ModifiedCount: modified}, nil
	}

	query, args, err = buildBookExistsQuery(r.db.builder, id)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case err == nil:
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*bookRepository.Upsert").Str("book_id", id).Msg("error checking book existence")
		return models.UpdateResult{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	query, args, err = buildUpsertBookQuery(r.db.builder, id, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bookRepository.Upsert").Str("book_id", id).Msg("error inserting book")
		return models.UpdateResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}
	log.Debug().Str("func", "*bookRepository.Upsert").Str("book_id", id).Msg("book created by update")

	upsertedID := id
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upsertedID}, nil
}

func (r *bookRepository) AdjustQuantity(ctx context.Context, id string, delta int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAdjustQuantityQuery(r.db.builder, id, delta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.AdjustQuantity").Str("book_id", id).Int64("delta", delta).Msg("error adjusting quantity")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Warn().Str("func", "*bookRepository.AdjustQuantity").Str("book_id", id).Msg("no book matched quantity adjustment")
	}

	return nil
}

func (r *bookRepository) queryBooks(ctx context.Context, fn, query string, args []any) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error selecting books")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning book")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating books")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return books, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var (
		book     models.Book
		quantity sql.NullInt64
	)

	err := row.Scan(
		&book.ID,
		&book.CoverImage,
		&book.Title,
		&book.AuthorName,
		&book.Category,
		&book.Rating,
		&quantity,
		&book.Attributes,
	)
	if err != nil {
		return models.Book{}, err
	}

	if quantity.Valid {
		q := quantity.Int64
		book.Quantity = &q
	}

	return book, nil
}
