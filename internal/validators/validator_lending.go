// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the borrower email.
	FieldEmail = "email"

	// FieldBookID targets the referenced book identifier.
	FieldBookID = "bookID"

	// FieldRecordID targets the borrow record identifier of a return.
	FieldRecordID = "id"

	// FieldQuantity targets the initial quantity of a new book.
	FieldQuantity = "quantity"
)

// LendingValidator implements [Validator] for the lending request models:
// BorrowRecord, ReturnRequest, Identity and Book.
//
// It accepts value and pointer forms of every model. Identifiers must be
// UUIDs; the check happens here so that malformed ids never reach a store.
type LendingValidator struct {
}

// NewLendingValidator constructs a new LendingValidator.
func NewLendingValidator() Validator {
	return &LendingValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted, every rule of the type
// applies.
func (v *LendingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BorrowRecord:
		return v.validateBorrowRecord(value, fields...)
	case *models.BorrowRecord:
		return v.validateBorrowRecord(*value, fields...)
	case models.ReturnRequest:
		return v.validateReturnRequest(value, fields...)
	case *models.ReturnRequest:
		return v.validateReturnRequest(*value, fields...)
	case models.Identity:
		return v.validateIdentity(value, fields...)
	case *models.Identity:
		return v.validateIdentity(*value, fields...)
	case models.Book:
		return v.validateBook(value, fields...)
	case *models.Book:
		return v.validateBook(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LendingValidator) validateBorrowRecord(record models.BorrowRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldBookID}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(record.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldBookID:
			if err := validateID(record.BookID, ErrEmptyBookID, ErrInvalidBookID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LendingValidator) validateReturnRequest(request models.ReturnRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldBookID}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if err := validateID(request.ID, ErrEmptyRecordID, ErrInvalidRecordID); err != nil {
				return err
			}
		case FieldBookID:
			if err := validateID(request.BookID, ErrEmptyBookID, ErrInvalidBookID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LendingValidator) validateIdentity(identity models.Identity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(identity.Email) == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBook has no default rules: a book document may be empty. Rules
// apply only when named.
func (v *LendingValidator) validateBook(book models.Book, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldQuantity:
			if book.Quantity != nil && *book.Quantity < 0 {
				return ErrNegativeQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateID(id string, errEmpty, errInvalid error) error {
	if id == "" {
		return errEmpty
	}
	if _, err := utils.ParseID(id); err != nil {
		return errInvalid
	}

	return nil
}
