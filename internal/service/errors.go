package service

import (
	"errors"

	"github.com/MKhiriev/amnplus-client/internal/session"
	"github.com/MKhiriev/amnplus-client/internal/validators"
)

var (
	ErrMissingFields = validators.ErrMissingFields
	ErrInvalidURL    = validators.ErrInvalidURL

	ErrNotFound     = errors.New("item not found")
	ErrUserNotFound = errors.New("no vault exists for this account yet")

	ErrSessionExpired = session.ErrSessionExpired
	ErrNotSignedIn    = session.ErrNotSignedIn

	ErrInvalidDataProvided = errors.New("vault rejected the request")
	ErrAccessDenied        = errors.New("access to this item is denied")
	ErrVaultUnreachable    = errors.New("vault is unreachable")
	ErrVaultUnavailable    = errors.New("vault is temporarily unavailable")
	ErrVaultFailure        = errors.New("vault failed to process the request")

	ErrEncryption = errors.New("could not encrypt secret")
	ErrDecryption = errors.New("could not decrypt secret")
)
