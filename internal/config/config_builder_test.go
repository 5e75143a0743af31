// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second", AuthGuardMode: AuthGuardPermissive}},
		&StructuredConfig{Server: Server{AllowedOrigins: []string{"http://localhost:5173"}}},
	)
	b.configs[0].Server.AllowedOrigins = []string{"*"}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, AuthGuardPermissive, cfg.App.AuthGuardMode)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 365*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, EnvironmentDevelopment, cfg.App.Environment)
	assert.Equal(t, AuthGuardStrict, cfg.App.AuthGuardMode)
	assert.Equal(t, UpdateBookAuthRequired, cfg.App.UpdateBookAuth)
	assert.Equal(t, "A11 server is working", cfg.App.Greeting)
	assert.Equal(t, ":5001", cfg.Server.HTTPAddress)
	assert.Equal(t, "memory://", cfg.Storage.DB.DSN)
	assert.NotEmpty(t, cfg.Adapter.CookieFile)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	path := writeTempJSONConfig(t, `{"app":{"version":"from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Version)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy-secret")
	t.Setenv("PORT", "7000")
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_LOG_LEVEL", "warn")

	path := writeTempJSONConfig(t, `{"app":{"log_level":"error"}}`)

	cfg, err := GetStructuredConfig([]string{
		"-a", "127.0.0.1:8080",
		"-auth-guard", "permissive",
		"-c", path,
	})
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, AuthGuardPermissive, cfg.App.AuthGuardMode)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestGetStructuredConfig_StructuredEnvBeatsLegacy(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy-secret")
	t.Setenv("APP_TOKEN_SIGN_KEY", "new-secret")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "new-secret", cfg.App.TokenSignKey)
}

func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "")

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
