package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/store"
	"github.com/MKhiriev/amnplus-client/models"
)

type passwordService struct {
	vault   adapter.VaultAdapter
	cipher  crypto.EnvelopeCipher
	keys    KeyRing
	cache   envelopeCache[models.Password]
	workers int

	logger *logger.Logger
}

// NewPasswordService builds the [PasswordService]. workers bounds the number
// of concurrent decryptions during List.
func NewPasswordService(
	vault adapter.VaultAdapter,
	cache store.EnvelopeCache,
	cipher crypto.EnvelopeCipher,
	keys KeyRing,
	workers int,
	logger *logger.Logger,
) PasswordService {
	return &passwordService{
		vault:  vault,
		cipher: cipher,
		keys:   keys,
		cache: envelopeCache[models.Password]{
			cache:  cache,
			kind:   models.KindPassword,
			idOf:   func(p models.Password) string { return p.ID },
			logger: logger,
		},
		workers: workers,
		logger:  logger,
	}
}

func (p *passwordService) List(ctx context.Context) (models.ListResult[models.DecryptedPassword], error) {
	var result models.ListResult[models.DecryptedPassword]

	uid, key, err := credentials(p.keys)
	if err != nil {
		return result, err
	}

	records, err := p.vault.ListPasswords(ctx)
	switch {
	case errors.Is(err, adapter.ErrTransport):
		if records, err = p.cache.fallback(ctx, uid, err); err != nil {
			return result, err
		}
		result.Stale = true
	case err != nil:
		return result, mapAdapterError(err)
	default:
		p.cache.remember(ctx, uid, records)
	}

	result.Items, result.Failed, err = openAll(ctx, p.workers, records, p.open(key), describePassword)
	if err != nil {
		return result, fmt.Errorf("decrypt passwords: %w", err)
	}

	if len(result.Failed) > 0 {
		p.logger.Warn().Int("failed", len(result.Failed)).Msg("some passwords could not be decrypted")
	}

	return result, nil
}

func (p *passwordService) Get(ctx context.Context, id string) (models.DecryptedPassword, error) {
	_, key, err := credentials(p.keys)
	if err != nil {
		return models.DecryptedPassword{}, err
	}

	record, err := p.vault.GetPassword(ctx, id)
	if err != nil {
		return models.DecryptedPassword{}, mapAdapterError(err)
	}

	return p.open(key)(record)
}

func (p *passwordService) Add(ctx context.Context, password models.PlainPassword) error {
	input, err := p.seal("", password)
	if err != nil {
		return err
	}

	if err = p.vault.AddPassword(ctx, input); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (p *passwordService) Edit(ctx context.Context, id string, password models.PlainPassword) error {
	input, err := p.seal(id, password)
	if err != nil {
		return err
	}

	if err = p.vault.EditPassword(ctx, input); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (p *passwordService) Delete(ctx context.Context, id string) error {
	if err := p.vault.DeletePassword(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (p *passwordService) Search(items []models.DecryptedPassword, term string) []models.DecryptedPassword {
	return filterByTerm(items, term, passwordSearchFields)
}

func (p *passwordService) seal(id string, password models.PlainPassword) (models.PasswordInput, error) {
	_, key, err := credentials(p.keys)
	if err != nil {
		return models.PasswordInput{}, err
	}

	envelope, err := p.cipher.Encrypt(password.Password, key)
	if err != nil {
		return models.PasswordInput{}, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return models.PasswordInput{
		ID:       id,
		Title:    password.Title,
		Username: password.Username,
		URL:      password.URL,
		Envelope: envelope,
	}, nil
}

func (p *passwordService) open(key *crypto.DerivedKey) openFunc[models.Password, models.DecryptedPassword] {
	return func(record models.Password) (models.DecryptedPassword, error) {
		secret, err := p.cipher.Decrypt(record.Envelope, key)
		if err != nil {
			return models.DecryptedPassword{}, fmt.Errorf("%w: %w", ErrDecryption, err)
		}

		return models.DecryptedPassword{
			ID:        record.ID,
			Title:     record.Title,
			Username:  record.Username,
			Password:  secret,
			URL:       record.URL,
			CreatedAt: record.CreatedAt,
		}, nil
	}
}

func describePassword(p models.Password) (string, string) {
	return p.ID, p.Title
}

// credentials resolves the signed-in user's uid and envelope key.
func credentials(keys KeyRing) (string, *crypto.DerivedKey, error) {
	uid, err := keys.UID()
	if err != nil {
		return "", nil, err
	}
	key, err := keys.Key()
	if err != nil {
		return "", nil, err
	}
	return uid, key, nil
}
