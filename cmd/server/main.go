// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/events"
	"github.com/MKhiriev/go-book-lending/internal/handler"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/metrics"
	"github.com/MKhiriev/go-book-lending/internal/server"
	"github.com/MKhiriev/go-book-lending/internal/service"
	"github.com/MKhiriev/go-book-lending/internal/store"
)

const (
	role           = "go-book-lending-server"
	startupTimeout = 30 * time.Second
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(role, "info")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger(role, cfg.App.LogLevel)
	if !cfg.App.IsProduction() {
		log = log.Console()
	}
	if buildVersion != "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("auth_guard", cfg.App.AuthGuardMode).
		Str("update_book_auth", cfg.App.UpdateBookAuth).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	publisher, err := events.NewPublisher(ctx, cfg.Events, log)
	if err != nil {
		log.Error().Err(err).Msg("event broker unavailable, events are disabled")
		publisher = events.NewNopPublisher()
	}

	m := metrics.New()

	services, err := service.NewServices(storages, publisher, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, publisher.Close, storages.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
