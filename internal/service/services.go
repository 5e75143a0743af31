// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/events"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/store"
)

type Services struct {
	CatalogService CatalogService
	LendingService LendingService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	publisher events.Publisher,
	recorder LendingRecorder,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	lendingService := NewLendingValidationService().Wrap(
		NewLendingService(storages.Books, storages.Borrows, publisher, recorder, logger),
	)

	return &Services{
		CatalogService: NewCatalogService(storages.Books, logger),
		LendingService: lendingService,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
