// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
)

// Storages groups the repositories of one backend together with the
// lifecycle hooks of the connection behind them.
type Storages struct {
	Books   BookRepository
	Borrows BorrowRepository

	ping  func(ctx context.Context) error
	close func() error
}

// NewStorages selects a backend from the DSN scheme, connects, migrates
// the schema and wires the repositories:
//
//	postgres://, postgresql://  PostgreSQL via pgx
//	sqlite://<path>, file:...   SQLite
//	memory://                   go-memdb, nothing persisted
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return newSQLStorages(db, log)

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err := NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return newSQLStorages(db, log)

	case strings.HasPrefix(dsn, "memory://"):
		mem, err := NewMemoryStore()
		if err != nil {
			return nil, fmt.Errorf("memory store error: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{
			Books:   NewMemoryBookRepository(mem, log),
			Borrows: NewMemoryBorrowRepository(mem, log),
			ping:    func(context.Context) error { return nil },
			close:   func() error { return nil },
		}, nil
	}

	return nil, ErrUnsupportedDSN
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Books:   NewBookRepository(db, log),
		Borrows: NewBorrowRepository(db, log),
		ping: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return db.wrapError(ErrExecutingQuery, err)
			}
			return nil
		},
		close: db.Close,
	}, nil
}

// Ping checks that the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
