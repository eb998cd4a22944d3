package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/store"
	"github.com/MKhiriev/amnplus-client/models"
)

type apiKeyService struct {
	vault   adapter.VaultAdapter
	prober  adapter.KeyProber
	cipher  crypto.EnvelopeCipher
	keys    KeyRing
	cache   envelopeCache[models.APIKey]
	workers int

	logger *logger.Logger
}

// NewAPIKeyService builds the [APIKeyService]. workers bounds concurrent
// decryptions and concurrent probes during List.
func NewAPIKeyService(
	vault adapter.VaultAdapter,
	prober adapter.KeyProber,
	cache store.EnvelopeCache,
	cipher crypto.EnvelopeCipher,
	keys KeyRing,
	workers int,
	logger *logger.Logger,
) APIKeyService {
	return &apiKeyService{
		vault:  vault,
		prober: prober,
		cipher: cipher,
		keys:   keys,
		cache: envelopeCache[models.APIKey]{
			cache:  cache,
			kind:   models.KindAPIKey,
			idOf:   func(k models.APIKey) string { return k.ID },
			logger: logger,
		},
		workers: workers,
		logger:  logger,
	}
}

func (a *apiKeyService) List(ctx context.Context, probe bool) (models.ListResult[models.DecryptedAPIKey], error) {
	var result models.ListResult[models.DecryptedAPIKey]

	uid, key, err := credentials(a.keys)
	if err != nil {
		return result, err
	}

	records, err := a.vault.ListAPIKeys(ctx)
	switch {
	case errors.Is(err, adapter.ErrTransport):
		if records, err = a.cache.fallback(ctx, uid, err); err != nil {
			return result, err
		}
		result.Stale = true
	case err != nil:
		return result, mapAdapterError(err)
	default:
		a.cache.remember(ctx, uid, records)
	}

	result.Items, result.Failed, err = openAll(ctx, a.workers, records, a.open(key), describeAPIKey)
	if err != nil {
		return result, fmt.Errorf("decrypt api keys: %w", err)
	}

	if len(result.Failed) > 0 {
		a.logger.Warn().Int("failed", len(result.Failed)).Msg("some api keys could not be decrypted")
	}

	if probe {
		a.probeAll(ctx, result.Items)
	}

	return result, nil
}

func (a *apiKeyService) Get(ctx context.Context, id string) (models.DecryptedAPIKey, error) {
	_, key, err := credentials(a.keys)
	if err != nil {
		return models.DecryptedAPIKey{}, err
	}

	record, err := a.vault.GetAPIKey(ctx, id)
	if err != nil {
		return models.DecryptedAPIKey{}, mapAdapterError(err)
	}

	return a.open(key)(record)
}

func (a *apiKeyService) Add(ctx context.Context, apiKey models.PlainAPIKey) error {
	input, err := a.seal("", apiKey)
	if err != nil {
		return err
	}

	if err = a.vault.AddAPIKey(ctx, input); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *apiKeyService) Edit(ctx context.Context, id string, apiKey models.PlainAPIKey) error {
	input, err := a.seal(id, apiKey)
	if err != nil {
		return err
	}

	if err = a.vault.EditAPIKey(ctx, input); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *apiKeyService) Delete(ctx context.Context, id string) error {
	if err := a.vault.DeleteAPIKey(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *apiKeyService) Search(items []models.DecryptedAPIKey, term string) []models.DecryptedAPIKey {
	return filterByTerm(items, term, apiKeySearchFields)
}

// Probe reports active for a 2xx answer and inactive for any other answer
// or a failed request. A key without URL has nothing to probe.
func (a *apiKeyService) Probe(ctx context.Context, key models.DecryptedAPIKey) models.APIKeyStatus {
	target := strings.TrimSpace(key.URL)
	if target == "" {
		return models.APIKeyStatusUnknown
	}

	status, err := a.prober.Probe(ctx, target, key.Key)
	if err != nil {
		a.logger.Debug().Err(err).Str("id", key.ID).Msg("api key probe failed")
		return models.APIKeyStatusInactive
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return models.APIKeyStatusActive
	}
	return models.APIKeyStatusInactive
}

func (a *apiKeyService) probeAll(ctx context.Context, items []models.DecryptedAPIKey) {
	var g errgroup.Group
	g.SetLimit(max(a.workers, 1))

	for i := range items {
		g.Go(func() error {
			items[i].Status = a.Probe(ctx, items[i])
			return nil
		})
	}

	_ = g.Wait()
}

func (a *apiKeyService) seal(id string, apiKey models.PlainAPIKey) (models.APIKeyInput, error) {
	_, key, err := credentials(a.keys)
	if err != nil {
		return models.APIKeyInput{}, err
	}

	envelope, err := a.cipher.Encrypt(apiKey.Key, key)
	if err != nil {
		return models.APIKeyInput{}, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return models.APIKeyInput{
		ID:          id,
		Title:       apiKey.Title,
		Description: apiKey.Description,
		URL:         apiKey.URL,
		Envelope:    envelope,
	}, nil
}

func (a *apiKeyService) open(key *crypto.DerivedKey) openFunc[models.APIKey, models.DecryptedAPIKey] {
	return func(record models.APIKey) (models.DecryptedAPIKey, error) {
		secret, err := a.cipher.Decrypt(record.Envelope, key)
		if err != nil {
			return models.DecryptedAPIKey{}, fmt.Errorf("%w: %w", ErrDecryption, err)
		}

		return models.DecryptedAPIKey{
			ID:          record.ID,
			Title:       record.Title,
			Key:         secret,
			Description: record.Description,
			URL:         record.URL,
			CreatedAt:   record.CreatedAt,
			Status:      models.APIKeyStatusUnknown,
		}, nil
	}
}

func describeAPIKey(k models.APIKey) (string, string) {
	return k.ID, k.Title
}
