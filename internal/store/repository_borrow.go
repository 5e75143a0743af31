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

// borrowRepository is the SQL implementation of [BorrowRepository].
type borrowRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBorrowRepository constructs a [BorrowRepository] backed by db.
func NewBorrowRepository(db *DB, logger *logger.Logger) BorrowRepository {
	logger.Debug().Msg("creating borrow repository")
	return &borrowRepository{
		db:     db,
		logger: logger,
	}
}

func (r *borrowRepository) Exists(ctx context.Context, email, bookID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBorrowExistsQuery(r.db.builder, email, bookID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.Exists").Str("book_id", bookID).Msg("error checking active borrow")
		return false, r.db.wrapError(ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *borrowRepository) Insert(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBorrowQuery(r.db.builder, record)
	if err != nil {
		return models.InsertResult{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*borrowRepository.Insert").Str("book_id", record.BookID).Msg("error inserting borrow record")
		return models.InsertResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: record.ID}, nil
}

func (r *borrowRepository) ListByIdentity(ctx context.Context, email string) ([]models.BorrowRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBorrowsQuery(r.db.builder, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.ListByIdentity").Msg("error selecting borrow records")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.BorrowRecord, 0)
	for rows.Next() {
		var record models.BorrowRecord
		if err = rows.Scan(&record.ID, &record.BookID, &record.Email, &record.Attributes); err != nil {
			log.Err(err).Str("func", "*borrowRepository.ListByIdentity").Msg("error scanning borrow record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return records, nil
}

func (r *borrowRepository) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBorrowQuery(r.db.builder, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.Delete").Str("record_id", id).Msg("error deleting borrow record")
		return models.DeleteResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
