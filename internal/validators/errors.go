// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyBookID      = errors.New("bookID is required")
	ErrInvalidBookID    = errors.New("invalid bookID")
	ErrEmptyRecordID    = errors.New("id is required")
	ErrInvalidRecordID  = errors.New("invalid borrow record id")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)
