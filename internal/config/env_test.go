// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_KDF_SALT":        "deployment-salt",
		"APP_KDF_ITERATIONS":  "120000",
		"APP_DECRYPT_WORKERS": "4",
		"APP_VERSION":         "1.2.3",

		"ADAPTER_VAULT_ADDRESS":    "https://vault.example.com",
		"ADAPTER_IDENTITY_ADDRESS": "https://id.example.com",
		"ADAPTER_TOKEN_ADDRESS":    "https://token.example.com",
		"ADAPTER_IDENTITY_API_KEY": "web-key",
		"ADAPTER_REQUEST_TIMEOUT":  "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/amnplus/cache.db",

		"LOG_FILE":  "/tmp/amnplus.log",
		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "deployment-salt", cfg.App.KDFSalt)
	assert.Equal(t, 120000, cfg.App.KDFIterations)
	assert.Equal(t, 4, cfg.App.DecryptWorkers)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.VaultAddress)
	assert.Equal(t, "https://id.example.com", cfg.Adapter.IdentityAddress)
	assert.Equal(t, "https://token.example.com", cfg.Adapter.TokenAddress)
	assert.Equal(t, "web-key", cfg.Adapter.IdentityAPIKey)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/amnplus/cache.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "/tmp/amnplus.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_KDF_SALT":          "salt",
		"ADAPTER_VAULT_ADDRESS": "https://vault.example.com",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "salt", cfg.App.KDFSalt)
	assert.Zero(t, cfg.App.KDFIterations)
	assert.Zero(t, cfg.App.DecryptWorkers)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.VaultAddress)
	assert.Empty(t, cfg.Adapter.IdentityAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "ADAPTER_REQUEST_TIMEOUT", "invalid_duration"},
		{"iterations", "APP_KDF_ITERATIONS", "many"},
		{"workers", "APP_DECRYPT_WORKERS", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_KDF_SALT",
		"APP_KDF_ITERATIONS",
		"APP_DECRYPT_WORKERS",
		"APP_VERSION",

		"ADAPTER_VAULT_ADDRESS",
		"ADAPTER_IDENTITY_ADDRESS",
		"ADAPTER_TOKEN_ADDRESS",
		"ADAPTER_IDENTITY_API_KEY",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",

		"LOG_FILE",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
