package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/service"
	"github.com/MKhiriev/amnplus-client/internal/session"
	"github.com/MKhiriev/amnplus-client/internal/store"
)

// App owns every long-lived collaborator of one CLI invocation.
type App struct {
	Session  *session.Manager
	Services *service.Services

	storages *store.Storages
	logger   *logger.Logger
}

// NewApp opens local storage and wires adapters, session and services from
// cfg. The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(cfg, storages, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	return app, nil
}

func newApp(cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) (*App, error) {
	cipher := crypto.NewEnvelopeCipher(kdfParams(cfg.App))

	identity, err := adapter.NewHTTPIdentityAdapter(adapter.IdentityConfig{
		AccountsAddress: cfg.Adapter.IdentityAddress,
		TokenAddress:    cfg.Adapter.TokenAddress,
		APIKey:          cfg.Adapter.IdentityAPIKey,
		Timeout:         cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create identity adapter: %w", err)
	}

	manager := session.NewManager(identity, storages.SessionRepository, storages.EnvelopeCache, cipher, log)

	vault, err := adapter.NewHTTPVaultAdapter(cfg.Adapter.VaultAddress, cfg.Adapter.RequestTimeout, manager, log)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}

	adapters := service.Adapters{
		Vault:  vault,
		Prober: adapter.NewHTTPKeyProber(cfg.Adapter.RequestTimeout),
	}

	return &App{
		Session:  manager,
		Services: service.NewServices(adapters, storages, cipher, manager, cfg.App, log),
		storages: storages,
		logger:   log,
	}, nil
}

// kdfParams maps the app config onto key derivation parameters. An unset
// salt keeps the default so existing envelopes stay readable.
func kdfParams(cfg config.App) crypto.KDFParams {
	params := crypto.DefaultKDFParams()
	if cfg.KDFSalt != "" {
		params.Salt = []byte(cfg.KDFSalt)
	}
	if cfg.KDFIterations > 0 {
		params.Iterations = cfg.KDFIterations
	}
	return params
}

// Close wipes key material and releases local storage.
func (a *App) Close() error {
	if a == nil {
		return nil
	}

	a.Session.Close()

	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
