// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/mock"
	"github.com/MKhiriev/go-book-lending/internal/service"
)

const (
	testBookID   = "0191f0c8-0000-7000-8000-000000000001"
	testRecordID = "0191f0c8-0000-7000-8000-0000000000a1"
	testEmail    = "a@x.com"
	testToken    = "signed.token.value"
)

type serviceMocks struct {
	catalog *mock.MockCatalogService
	lending *mock.MockLendingService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment:    config.EnvironmentDevelopment,
			AuthGuardMode:  config.AuthGuardStrict,
			UpdateBookAuth: config.UpdateBookAuthRequired,
			TokenDuration:  time.Hour,
		},
		Server: config.Server{AllowedOrigins: []string{"*"}},
	}
}

// newTestRouter builds the full router over gomock services. modify may
// adjust the configuration before the router is built.
func newTestRouter(t *testing.T, modify func(*config.StructuredConfig)) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		catalog: mock.NewMockCatalogService(ctrl),
		lending: mock.NewMockLendingService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	cfg := testConfig()
	if modify != nil {
		modify(&cfg)
	}

	services := &service.Services{
		CatalogService: m.catalog,
		LendingService: m.lending,
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, nil, cfg, logger.Nop()).Init(), m
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tokenCookie(value string) *http.Cookie {
	return &http.Cookie{Name: tokenCookieName, Value: value}
}
