// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicate is returned when an insert collides with a unique key,
	// such as a second active borrow of the same book by the same email.
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidInput is returned when the database rejects a value
	// (constraint or data exception other than a unique collision).
	ErrInvalidInput = errors.New("invalid input rejected by database")

	// ErrUnavailable is returned when the database cannot be reached or is
	// refusing connections.
	ErrUnavailable = errors.New("database unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] for a DSN whose scheme
	// does not name a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
