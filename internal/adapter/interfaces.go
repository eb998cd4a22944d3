// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the two remote
// collaborators of the amnplus client: the vault backend that stores
// encrypted records, and the identity provider that authenticates users.
//
// Both are HTTP/JSON services reached through resty. Error values defined in
// errors.go are mapped from HTTP status codes and provider error codes so
// that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401, [ErrInvalidCredentials] for a rejected
// sign-in).
package adapter

import (
	"context"

	"github.com/MKhiriev/amnplus-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to vault requests. The
// session implements it and refreshes the token when it is about to expire.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}

// VaultAdapter talks to the vault backend. Every call is authenticated with
// the token returned by the adapter's [TokenSource]; the backend infers the
// owner from that token, so the adapter never handles the uid.
//
// Records travel with their secrets already sealed: the adapter neither
// encrypts nor decrypts.
type VaultAdapter interface {
	// ListPasswords returns every stored password in server order.
	// GET /get/passwords
	ListPasswords(ctx context.Context) ([]models.Password, error)

	// GetPassword returns a single password. Returns [ErrNotFound] when the
	// id is unknown.
	// GET /get/password/{id}
	GetPassword(ctx context.Context, id string) (models.Password, error)

	// AddPassword stores a new password. The backend assigns the id and the
	// creation time.
	// POST /post/passwords
	AddPassword(ctx context.Context, input models.PasswordInput) error

	// EditPassword replaces title, username, url and envelope of input.ID.
	// POST /post/edit-password
	EditPassword(ctx context.Context, input models.PasswordInput) error

	// DeletePassword removes a password.
	// POST /post/delete-password
	DeletePassword(ctx context.Context, id string) error

	// ListAPIKeys returns every stored API key in server order.
	// GET /get/apikeys
	ListAPIKeys(ctx context.Context) ([]models.APIKey, error)

	// GetAPIKey returns a single API key.
	// GET /get/apikey/{id}
	GetAPIKey(ctx context.Context, id string) (models.APIKey, error)

	// AddAPIKey stores a new API key.
	// POST /post/apikeys
	AddAPIKey(ctx context.Context, input models.APIKeyInput) error

	// EditAPIKey replaces title, description, url and envelope of input.ID.
	// POST /post/edit-apikey
	EditAPIKey(ctx context.Context, input models.APIKeyInput) error

	// DeleteAPIKey removes an API key.
	// POST /post/delete-apikey
	DeleteAPIKey(ctx context.Context, id string) error

	// Stats returns the number of stored passwords and API keys.
	// GET /get/stats
	Stats(ctx context.Context) (models.Stats, error)
}

// IdentityAdapter talks to the identity provider's REST API.
type IdentityAdapter interface {
	// SignIn exchanges email and password for an identity. Returns
	// [ErrInvalidCredentials] when the provider rejects them.
	SignIn(ctx context.Context, email, password string) (models.Identity, error)

	// SignUp creates an account and returns its identity. Returns
	// [ErrEmailExists] when the address is taken.
	SignUp(ctx context.Context, email, password string) (models.Identity, error)

	// Refresh exchanges a refresh token for a new ID token. Returns
	// [ErrTokenRevoked] when the refresh token is no longer accepted.
	Refresh(ctx context.Context, refreshToken string) (models.Identity, error)
}

// KeyProber checks whether an API key is accepted by the service it belongs
// to.
type KeyProber interface {
	// Probe sends an authenticated GET to target with key as bearer token
	// and returns the HTTP status code.
	Probe(ctx context.Context, target, key string) (int, error)
}
