// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-lending/internal/mock"
	"github.com/MKhiriev/go-book-lending/internal/validators"
	"github.com/MKhiriev/go-book-lending/models"
)

func newTestValidationSvc(t *testing.T) (LendingService, *mock.MockLendingService) {
	t.Helper()
	inner := mock.NewMockLendingService(gomock.NewController(t))

	return NewLendingValidationService().Wrap(inner), inner
}

func TestLendingValidationService_Borrow(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	valid := models.BorrowRecord{BookID: testBookID, Email: testEmail}
	inner.EXPECT().Borrow(ctx, valid).Return(models.InsertResult{Acknowledged: true}, nil)

	result, err := svc.Borrow(ctx, valid)
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)

	_, err = svc.Borrow(ctx, models.BorrowRecord{BookID: testBookID})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyEmail)

	_, err = svc.Borrow(ctx, models.BorrowRecord{Email: testEmail})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyBookID)

	_, err = svc.Borrow(ctx, models.BorrowRecord{BookID: "bad", Email: testEmail})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestLendingValidationService_Return(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	valid := models.ReturnRequest{ID: testRecordID, BookID: testBookID}
	inner.EXPECT().Return(ctx, valid).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	_, err := svc.Return(ctx, valid)
	require.NoError(t, err)

	_, err = svc.Return(ctx, models.ReturnRequest{BookID: testBookID})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyRecordID)

	_, err = svc.Return(ctx, models.ReturnRequest{ID: "bad", BookID: testBookID})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestLendingValidationService_ListBorrowed(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := ctxWithIdentity(testEmail)

	inner.EXPECT().ListBorrowed(ctx, testEmail).Return(nil, nil)

	_, err := svc.ListBorrowed(ctx, testEmail)
	require.NoError(t, err)

	_, err = svc.ListBorrowed(ctx, " ")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
