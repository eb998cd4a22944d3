package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/models"
)

// insertChunk bounds the rows per INSERT so that the statement stays under
// sqlite's bound-parameter limit (999 on older builds).
const insertChunk = 150

type envelopeCacheRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewEnvelopeCacheRepository(db *DB, logger *logger.Logger) EnvelopeCache {
	return &envelopeCacheRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (e *envelopeCacheRepository) Replace(ctx context.Context, uid string, kind models.ItemKind, records []models.CachedRecord) (err error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteCachedQuery(uid, kind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "envelopeCacheRepository.Replace").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "envelopeCacheRepository.Replace").
			Str("kind", string(kind)).
			Msg("failed to clear cached envelopes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	at := e.now()
	for start := 0; start < len(records); start += insertChunk {
		end := min(start+insertChunk, len(records))

		query, args, buildErr := buildInsertCachedQuery(uid, kind, records[start:end], start, at)
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "envelopeCacheRepository.Replace").
				Str("kind", string(kind)).
				Int("records", len(records)).
				Msg("failed to insert cached envelopes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("kind", string(kind)).Int("records", len(records)).Msg("envelope cache refreshed")
	return nil
}

func (e *envelopeCacheRepository) List(ctx context.Context, uid string, kind models.ItemKind) ([]models.CachedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCachedQuery(uid, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeCacheRepository.List").
			Str("kind", string(kind)).
			Msg("failed to query cached envelopes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CachedRecord, 0)
	for rows.Next() {
		var r models.CachedRecord
		if err = rows.Scan(&r.ID, &r.Payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (e *envelopeCacheRepository) Purge(ctx context.Context, uid string) error {
	query, args, err := buildPurgeCachedQuery(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "envelopeCacheRepository.Purge").Msg("failed to purge cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
