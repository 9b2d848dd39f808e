// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsKeepDefaults(t *testing.T) {
	opts, err := getCLIArgs(nil)
	require.NoError(t, err)

	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.True(t, cfg.Reload.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rag-status.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("server:\n  host: 127.0.0.1\n  port: 9000\nlog_level: warn\n"), 0o644))

	opts, err := getCLIArgs([]string{"--config", path, "--port", "9100", "--no-reload", "--metrics"})
	require.NoError(t, err)

	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Reload.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestEnvironmentOptions(t *testing.T) {
	t.Setenv("RAG_STATUS_PORT", "8123")
	t.Setenv("RAG_STATUS_LOG_LEVEL", "debug")

	opts, err := getCLIArgs(nil)
	require.NoError(t, err)

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLambdaModeDisablesReload(t *testing.T) {
	opts, err := getCLIArgs([]string{"--lambda"})
	require.NoError(t, err)

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.False(t, cfg.Reload.Enabled)
}

func TestHelpFlag(t *testing.T) {
	_, err := getCLIArgs([]string{"--help"})
	assert.True(t, isHelp(err))
}

func TestUnknownFlag(t *testing.T) {
	_, err := getCLIArgs([]string{"--reload-everything"})
	assert.Error(t, err)
	assert.False(t, isHelp(err))
}

func TestMissingConfigFile(t *testing.T) {
	_, err := loadConfig(options{Config: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRouterWiresMetrics(t *testing.T) {
	logrus.SetOutput(ioutil.Discard)

	opts, err := getCLIArgs([]string{"--metrics"})
	require.NoError(t, err)
	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	router, err := newRouter(cfg)
	require.NoError(t, err)

	for _, path := range []string{"/", "/health", "/api/status", "/openapi.json", "/metrics"} {
		responseRecorder := httptest.NewRecorder()
		router.ServeHTTP(responseRecorder, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, responseRecorder.Code, path)
	}
}
