// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-lending/internal/validators"
	"github.com/MKhiriev/go-book-lending/models"
)

// LendingValidationService validates borrow and return requests before
// handing them to the wrapped LendingService.
type LendingValidationService struct {
	inner     LendingService
	validator validators.Validator
}

func NewLendingValidationService() LendingServiceWrapper {
	return &LendingValidationService{
		validator: validators.NewLendingValidator(),
	}
}

func (v *LendingValidationService) Borrow(ctx context.Context, record models.BorrowRecord) (models.InsertResult, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.InsertResult{}, validationError("borrow record", err)
	}

	return v.inner.Borrow(ctx, record)
}

func (v *LendingValidationService) Return(ctx context.Context, request models.ReturnRequest) (models.DeleteResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.DeleteResult{}, validationError("return request", err)
	}

	return v.inner.Return(ctx, request)
}

func (v *LendingValidationService) ListBorrowed(ctx context.Context, email string) ([]models.BorrowRecord, error) {
	if err := v.validator.Validate(ctx, models.Identity{Email: email}); err != nil {
		return nil, validationError("borrower", err)
	}

	return v.inner.ListBorrowed(ctx, email)
}

func (v *LendingValidationService) Wrap(inner LendingService) LendingService {
	v.inner = inner
	return v
}

// validationError keeps the validator error in the chain and adds the
// service-level class: ErrInvalidID for identifiers, ErrInvalidDataProvided
// for the rest.
func validationError(subject string, err error) error {
	if errors.Is(err, validators.ErrInvalidBookID) || errors.Is(err, validators.ErrInvalidRecordID) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidID, subject, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrInvalidDataProvided, subject, err)
}
