// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can drive the
// client: every remote address parses, timeouts and KDF parameters are
// positive, and a local database path is set.
func (cfg *StructuredConfig) validate() error {
	for name, raw := range map[string]string{
		"vault address":    cfg.Adapter.VaultAddress,
		"identity address": cfg.Adapter.IdentityAddress,
		"token address":    cfg.Adapter.TokenAddress,
	} {
		if err := validateURL(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidAdapterConfigs, name, err)
		}
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.App.KDFIterations <= 0 || cfg.App.DecryptWorkers <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// RequireIdentity reports whether the identity provider can be reached; it
// is checked only by commands that talk to it.
func (cfg *StructuredConfig) RequireIdentity() error {
	if strings.TrimSpace(cfg.Adapter.IdentityAPIKey) == "" {
		return fmt.Errorf("%w: identity api key is not set", ErrInvalidAdapterConfigs)
	}
	return nil
}

func validateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}
	return nil
}
