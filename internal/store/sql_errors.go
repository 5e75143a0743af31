// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
)

// ErrorClassification is the category a failed database operation falls
// into. The repositories turn it into one of the package's sentinel errors.
type ErrorClassification int

const (
	// Unclassified is the default for errors no classifier recognises.
	Unclassified ErrorClassification = iota

	// Duplicate marks a unique key collision.
	Duplicate

	// InvalidInput marks a rejected value: constraint or data exceptions.
	InvalidInput

	// Unavailable marks a lost or refused connection.
	Unavailable
)

// classifyConnError recognises connection failures that look the same for
// every driver.
func classifyConnError(err error) (ErrorClassification, bool) {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return Unavailable, true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Unavailable, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable, true
	}

	return Unclassified, false
}
