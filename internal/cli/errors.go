package cli

import (
	"errors"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/service"
)

var (
	ErrAborted     = errors.New("aborted")
	ErrEmptySecret = errors.New("secret must not be empty")
)

// Describe turns err into the message printed to the user.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotSignedIn):
		return "not signed in, run `amnplus login` first"
	case errors.Is(err, service.ErrSessionExpired):
		return "session expired, run `amnplus login` again"
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return adapter.ErrInvalidCredentials.Error()
	case errors.Is(err, adapter.ErrEmailExists):
		return adapter.ErrEmailExists.Error()
	case errors.Is(err, adapter.ErrInvalidEmail):
		return adapter.ErrInvalidEmail.Error()
	case errors.Is(err, adapter.ErrTooManyAttempts):
		return adapter.ErrTooManyAttempts.Error()
	case errors.Is(err, adapter.ErrUserDisabled):
		return adapter.ErrUserDisabled.Error()
	case errors.Is(err, service.ErrVaultUnreachable):
		return "vault is unreachable, check your connection"
	case errors.Is(err, service.ErrNotFound):
		return service.ErrNotFound.Error()
	case errors.Is(err, service.ErrUserNotFound):
		return service.ErrUserNotFound.Error()
	case errors.Is(err, config.ErrInvalidAdapterConfigs),
		errors.Is(err, config.ErrInvalidAppConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs):
		return "invalid configuration: " + err.Error()
	}
	return err.Error()
}
