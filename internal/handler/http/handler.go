// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/metrics"
	"github.com/MKhiriev/go-book-lending/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	app    config.App
	server config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case no
// request metrics are collected and /metrics is not served.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
}
