// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/migrations"
)

// Dialect names a SQL backend. The value doubles as the goose dialect name.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a SQL connection pool together with what repositories need to talk
// to it: a squirrel builder with the dialect's placeholder format and an
// error classifier for the driver.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholders sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholders = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// wrapError attaches the classification of err to it. op is the sentinel
// describing the failed step and is used when err is unclassified.
func (db *DB) wrapError(op, err error) error {
	switch db.errorClassificator.Classify(err) {
	case Duplicate:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case InvalidInput:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", op, err)
	}
}
