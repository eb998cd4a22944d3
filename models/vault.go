// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemKind names a vault collection. It is used as a discriminator by the
// local envelope cache.
type ItemKind string

const (
	KindPassword ItemKind = "password"
	KindAPIKey   ItemKind = "apikey"
)

// Password is a stored website credential as the vault backend returns it.
// Only the secret itself travels encrypted; the rest is plaintext metadata.
type Password struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	URL       string    `json:"url"`
	CreatedAt Timestamp `json:"createdAt"`

	Envelope
}

// APIKey is a stored API key as the vault backend returns it.
type APIKey struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   Timestamp `json:"createdAt"`

	Envelope
}

// PasswordInput is the request body for creating or editing a password.
// ID is empty on create and required on edit.
type PasswordInput struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Username string `json:"username"`
	URL      string `json:"url"`

	Envelope
}

// APIKeyInput is the request body for creating or editing an API key.
type APIKeyInput struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`

	Envelope
}

// PlainPassword is the user-entered form of a password before encryption.
type PlainPassword struct {
	Title    string
	Username string
	Password string
	URL      string
}

// PlainAPIKey is the user-entered form of an API key before encryption.
type PlainAPIKey struct {
	Title       string
	Key         string
	Description string
	URL         string
}

// DecryptedPassword is a [Password] whose envelope has been opened.
type DecryptedPassword struct {
	ID        string
	Title     string
	Username  string
	Password  string
	URL       string
	CreatedAt Timestamp
}

// APIKeyStatus is the liveness of an API key as observed by a probe.
type APIKeyStatus string

const (
	APIKeyStatusUnknown  APIKeyStatus = "unknown"
	APIKeyStatusActive   APIKeyStatus = "active"
	APIKeyStatusInactive APIKeyStatus = "inactive"
)

// DecryptedAPIKey is an [APIKey] whose envelope has been opened.
type DecryptedAPIKey struct {
	ID          string
	Title       string
	Key         string
	Description string
	URL         string
	CreatedAt   Timestamp
	Status      APIKeyStatus
}

// Stats is the per-user item count summary.
type Stats struct {
	TotalPasswords int `json:"total_passwords"`
	TotalAPIKeys   int `json:"total_apikeys"`
}

// ItemError records a single item that could not be decrypted. A list view
// skips such items instead of failing as a whole.
type ItemError struct {
	ID    string
	Title string
	Err   error
}

// Error implements the error interface.
func (e ItemError) Error() string {
	return "item " + e.ID + " (" + e.Title + "): " + e.Err.Error()
}

// Unwrap returns the underlying decryption error.
func (e ItemError) Unwrap() error {
	return e.Err
}

// ListResult is the outcome of listing and decrypting a vault collection.
type ListResult[T any] struct {
	// Items holds every successfully decrypted entry, in server order.
	Items []T

	// Failed holds the entries that could not be decrypted.
	Failed []ItemError

	// Stale is set when the backend was unreachable and Items were served
	// from the local envelope cache.
	Stale bool
}

// CachedRecord is one envelope-bearing record in the local cache. Payload is
// the JSON of the original [Password] or [APIKey].
type CachedRecord struct {
	ID      string
	Payload []byte
}
