package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/config"
	"github.com/MKhiriev/amnplus-client/internal/service"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not signed in", err: fmt.Errorf("restore: %w", service.ErrNotSignedIn), want: "not signed in, run `amnplus login` first"},
		{name: "expired", err: service.ErrSessionExpired, want: "session expired, run `amnplus login` again"},
		{name: "credentials", err: fmt.Errorf("sign in: %w", adapter.ErrInvalidCredentials), want: adapter.ErrInvalidCredentials.Error()},
		{name: "unreachable", err: fmt.Errorf("%w: dial tcp", service.ErrVaultUnreachable), want: "vault is unreachable, check your connection"},
		{name: "not found", err: service.ErrNotFound, want: service.ErrNotFound.Error()},
		{name: "config", err: config.ErrInvalidStorageConfigs, want: "invalid configuration: " + config.ErrInvalidStorageConfigs.Error()},
		{name: "other", err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
