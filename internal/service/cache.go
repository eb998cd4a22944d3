package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/store"
	"github.com/MKhiriev/amnplus-client/models"
)

// envelopeCache stores server records exactly as received. Payloads are
// the records' JSON, so only ciphertext ever reaches disk.
type envelopeCache[R any] struct {
	cache  store.EnvelopeCache
	kind   models.ItemKind
	idOf   func(R) string
	logger *logger.Logger
}

// remember replaces the cached records of uid. A failure is logged and
// swallowed: the cache only backs offline reads.
func (c envelopeCache[R]) remember(ctx context.Context, uid string, records []R) {
	cached := make([]models.CachedRecord, 0, len(records))
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			c.logger.Err(err).Str("kind", string(c.kind)).Msg("failed to encode record for cache")
			return
		}
		cached = append(cached, models.CachedRecord{ID: c.idOf(record), Payload: payload})
	}

	if err := c.cache.Replace(ctx, uid, c.kind, cached); err != nil {
		c.logger.Err(err).Str("kind", string(c.kind)).Msg("failed to refresh envelope cache")
	}
}

// recall returns the cached records of uid. Undecodable payloads are
// skipped.
func (c envelopeCache[R]) recall(ctx context.Context, uid string) ([]R, error) {
	cached, err := c.cache.List(ctx, uid, c.kind)
	if err != nil {
		return nil, fmt.Errorf("read envelope cache: %w", err)
	}

	records := make([]R, 0, len(cached))
	for _, rec := range cached {
		var record R
		if err := json.Unmarshal(rec.Payload, &record); err != nil {
			c.logger.Warn().Err(err).Str("id", rec.ID).Msg("skipping corrupt cached record")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// fallback serves cached records after the vault could not be reached.
// cause is returned, mapped, when there is nothing cached to serve.
func (c envelopeCache[R]) fallback(ctx context.Context, uid string, cause error) ([]R, error) {
	records, err := c.recall(ctx, uid)
	if err != nil {
		c.logger.Err(err).Msg("offline fallback failed")
		return nil, mapAdapterError(cause)
	}
	if len(records) == 0 {
		return nil, mapAdapterError(cause)
	}

	c.logger.Warn().
		Str("kind", string(c.kind)).
		Int("records", len(records)).
		Msg("vault unreachable, serving cached envelopes")

	return records, nil
}
