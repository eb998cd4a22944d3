package store

import (
	"context"

	"github.com/MKhiriev/amnplus-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnvelopeCache keeps the last successfully listed records of each vault
// collection so that listings keep working while the backend is
// unreachable. It stores records exactly as the backend returned them:
// secrets stay sealed in their envelopes.
type EnvelopeCache interface {
	// Replace atomically swaps the cached records of (uid, kind) for
	// records, keeping their order.
	Replace(ctx context.Context, uid string, kind models.ItemKind, records []models.CachedRecord) error

	// List returns the cached records of (uid, kind) in the order they were
	// stored. An empty cache yields an empty slice and no error.
	List(ctx context.Context, uid string, kind models.ItemKind) ([]models.CachedRecord, error)

	// Purge drops every cached record of uid.
	Purge(ctx context.Context, uid string) error
}

// SessionRepository persists the signed-in identity between CLI runs. Only
// one identity is stored at a time. Derived keys are never persisted.
type SessionRepository interface {
	// Save stores identity, replacing any previous one.
	Save(ctx context.Context, identity models.Identity) error

	// Load returns the stored identity or [ErrSessionNotFound].
	Load(ctx context.Context) (models.Identity, error)

	// Delete removes the stored identity. Deleting a missing identity is
	// not an error.
	Delete(ctx context.Context) error
}
