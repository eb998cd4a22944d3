package service

import (
	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/store"
)

// Adapters groups the remote collaborators the services talk to.
type Adapters struct {
	Vault  adapter.VaultAdapter
	Prober adapter.KeyProber
}

type Services struct {
	PasswordService PasswordService
	APIKeyService   APIKeyService
	StatsService    StatsService
}

func NewServices(adapters Adapters, storages *store.Storages, cipher crypto.EnvelopeCipher, keys KeyRing, cfg config.App, logger *logger.Logger) *Services {
	passwords := NewPasswordService(adapters.Vault, storages.EnvelopeCache, cipher, keys, cfg.DecryptWorkers, logger)
	apiKeys := NewAPIKeyService(adapters.Vault, adapters.Prober, storages.EnvelopeCache, cipher, keys, cfg.DecryptWorkers, logger)

	return &Services{
		PasswordService: NewPasswordValidationService().Wrap(passwords),
		APIKeyService:   NewAPIKeyValidationService().Wrap(apiKeys),
		StatsService:    NewStatsService(adapters.Vault),
	}
}
