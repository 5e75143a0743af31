// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// JSON field names of a borrow record.
const (
	BorrowFieldID     = "_id"
	BorrowFieldBookID = "bookID"
	BorrowFieldEmail  = "email"
)

// BorrowRecord links a borrower to a borrowed book. A record exists only
// while the book is out; returning the book deletes it.
type BorrowRecord struct {
	ID     string
	BookID string
	Email  string

	// Attributes holds the rest of the borrow payload exactly as submitted
	// (return date, display name, etc.).
	Attributes Attributes
}

// MarshalJSON renders the record as a flat document.
func (r BorrowRecord) MarshalJSON() ([]byte, error) {
	return mergeDocument(map[string]any{
		BorrowFieldID:     r.ID,
		BorrowFieldBookID: r.BookID,
		BorrowFieldEmail:  r.Email,
	}, r.Attributes)
}

// UnmarshalJSON accepts any JSON object; unknown fields go to Attributes.
// "_id" is decoded; the lending service assigns its own on borrow.
func (r *BorrowRecord) UnmarshalJSON(data []byte) error {
	fields, attrs, err := splitDocument(data, BorrowFieldID, BorrowFieldBookID, BorrowFieldEmail)
	if err != nil {
		return err
	}

	var record BorrowRecord
	if record.ID, err = decodeString(fields[BorrowFieldID]); err != nil {
		return fmt.Errorf("%s: %w", BorrowFieldID, err)
	}
	if record.BookID, err = decodeString(fields[BorrowFieldBookID]); err != nil {
		return fmt.Errorf("%s: %w", BorrowFieldBookID, err)
	}
	if record.Email, err = decodeString(fields[BorrowFieldEmail]); err != nil {
		return fmt.Errorf("%s: %w", BorrowFieldEmail, err)
	}
	record.Attributes = attrs

	*r = record
	return nil
}

// ReturnRequest identifies the borrow record to close and the book whose
// quantity goes back up.
type ReturnRequest struct {
	ID     string `json:"id"`
	BookID string `json:"bookID"`
}
