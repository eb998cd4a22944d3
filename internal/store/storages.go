package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/logger"
)

// Storages groups all client-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	// EnvelopeCache is the sqlite-backed offline copy of listed records.
	EnvelopeCache EnvelopeCache

	// SessionRepository keeps the signed-in identity between runs.
	SessionRepository SessionRepository

	db *DB
}

// NewStorages initialises the client storage layer:
//  1. Opens an SQLite connection to the file path in cfg.DSN, creating the
//     file (mode 0600) if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to that connection.
//
// Returns an error if the database cannot be opened or migrated.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("dsn", cfg.DSN).Msg("opening local storage...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EnvelopeCache:     NewEnvelopeCacheRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
