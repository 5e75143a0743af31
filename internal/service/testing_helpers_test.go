// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-book-lending/internal/utils"
	"github.com/MKhiriev/go-book-lending/models"
)

const (
	testBookID   = "0191f0c8-0000-7000-8000-000000000001"
	testRecordID = "0191f0c8-0000-7000-8000-0000000000a1"
	testEmail    = "a@x.com"
)

func ctxWithIdentity(email string) context.Context {
	return utils.WithIdentity(context.Background(), models.Identity{Email: email})
}

func ptr[T any](v T) *T {
	return &v
}
