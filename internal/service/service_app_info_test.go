// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
	"github.com/MKhiriev/go-book-lending/internal/mock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetGreeting / GetAppVersion
// ─────────────────────────────────────────────

func TestGetGreeting_ReturnsConfiguredGreeting(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1", Greeting: "A11 server is working"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "A11 server is working", svc.GetGreeting(context.Background()))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := config.App{Version: "3.1.4"}
	svc, err := NewAppInfoService(cfg, nil, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got)
}

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.App{Version: version}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// CheckHealth
// ─────────────────────────────────────────────

func TestCheckHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	ctx := context.Background()

	svc, err := NewAppInfoService(config.App{Version: "1"}, pinger, logger.Nop())
	require.NoError(t, err)

	pinger.EXPECT().Ping(ctx).Return(nil)
	require.NoError(t, svc.CheckHealth(ctx))

	pinger.EXPECT().Ping(ctx).Return(errors.New("connection refused"))
	err = svc.CheckHealth(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage is unreachable")
}

func TestCheckHealth_NoPinger(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.CheckHealth(context.Background()))
}
