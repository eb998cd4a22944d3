// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault operations of the client: it seals
// secrets before they leave the process, opens them after they arrive, and
// serves the last known envelopes from the local cache when the vault
// cannot be reached.
package service

import (
	"context"

	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// KeyRing hands out the envelope key and uid of the signed-in user.
type KeyRing interface {
	UID() (string, error)
	Key() (*crypto.DerivedKey, error)
}

// PasswordService manages stored website credentials.
type PasswordService interface {
	// List fetches and decrypts every password. Items that fail to decrypt
	// are reported in [models.ListResult.Failed].
	List(ctx context.Context) (models.ListResult[models.DecryptedPassword], error)
	Get(ctx context.Context, id string) (models.DecryptedPassword, error)
	Add(ctx context.Context, password models.PlainPassword) error
	Edit(ctx context.Context, id string, password models.PlainPassword) error
	Delete(ctx context.Context, id string) error

	// Search filters items by a case-insensitive substring of title or
	// username. An empty term returns items unchanged.
	Search(items []models.DecryptedPassword, term string) []models.DecryptedPassword
}

// APIKeyService manages stored API keys.
type APIKeyService interface {
	// List fetches and decrypts every API key. With probe set, every key
	// that has a URL is probed and its status filled in.
	List(ctx context.Context, probe bool) (models.ListResult[models.DecryptedAPIKey], error)
	Get(ctx context.Context, id string) (models.DecryptedAPIKey, error)
	Add(ctx context.Context, key models.PlainAPIKey) error
	Edit(ctx context.Context, id string, key models.PlainAPIKey) error
	Delete(ctx context.Context, id string) error

	// Search filters items by a case-insensitive substring of title or
	// description.
	Search(items []models.DecryptedAPIKey, term string) []models.DecryptedAPIKey

	// Probe calls the key's URL with the key as bearer token.
	Probe(ctx context.Context, key models.DecryptedAPIKey) models.APIKeyStatus
}

// StatsService reports item counts.
type StatsService interface {
	Stats(ctx context.Context) (models.Stats, error)
}
