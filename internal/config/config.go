// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the amnplus
// client. It is populated by merging command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key-derivation and processing settings.
	App App `envPrefix:"APP_"`

	// Adapter holds addresses and timeouts of the remote collaborators.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log file and level settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// KDFSalt overrides crypto.DefaultSalt. It must equal the web client's
	// salt literal to read envelopes the web client stored. Every client of a
	// deployment must use the same value or stored secrets become
	// unreadable.
	// Env: APP_KDF_SALT
	KDFSalt string `env:"KDF_SALT"`

	// KDFIterations is the PBKDF2 iteration count.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// DecryptWorkers bounds how many envelopes are opened in parallel when a
	// list is decrypted.
	// Env: APP_DECRYPT_WORKERS
	DecryptWorkers int `env:"DECRYPT_WORKERS"`

	// Version is the application version attached to every log entry.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of outbound HTTP clients.
type Adapter struct {
	// VaultAddress is the base URL of the vault backend.
	// Env: ADAPTER_VAULT_ADDRESS
	VaultAddress string `env:"VAULT_ADDRESS"`

	// IdentityAddress is the base URL of the identity provider's account
	// API (sign-in, sign-up).
	// Env: ADAPTER_IDENTITY_ADDRESS
	IdentityAddress string `env:"IDENTITY_ADDRESS"`

	// TokenAddress is the base URL of the identity provider's token refresh
	// API.
	// Env: ADAPTER_TOKEN_ADDRESS
	TokenAddress string `env:"TOKEN_ADDRESS"`

	// IdentityAPIKey is the public web API key of the identity project.
	// Env: ADAPTER_IDENTITY_API_KEY
	IdentityAPIKey string `env:"IDENTITY_API_KEY"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the local sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local sqlite database settings.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is the minimum level written ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in priority order (earlier sources win for
// every field they set):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags may be nil when no command line is available.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
