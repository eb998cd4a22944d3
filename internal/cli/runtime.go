package cli

import (
	"context"

	"github.com/MKhiriev/amnplus-client/internal/client"
	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/service"
	"github.com/MKhiriev/amnplus-client/internal/session"
)

// Runtime is what the commands operate on.
type Runtime struct {
	Sessions  *session.Manager
	Passwords service.PasswordService
	APIKeys   service.APIKeyService
	Stats     service.StatsService

	// Close releases the runtime. It may be nil.
	Close func() error
}

// Bootstrap builds the [Runtime] for one invocation.
type Bootstrap func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error)

// DefaultBootstrap wires the real client application.
func DefaultBootstrap(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error) {
	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Sessions:  app.Session,
		Passwords: app.Services.PasswordService,
		APIKeys:   app.Services.APIKeyService,
		Stats:     app.Services.StatsService,
		Close:     app.Close,
	}, nil
}
