// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrNotSignedIn):
		return err

	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotSignedIn

	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrVaultUnreachable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch extractDetail(err, adapter.ErrBadRequest) {
		case app.MsgMissingPasswordFields, app.MsgMissingAPIKeyFields, app.MsgMissingID:
			return ErrMissingFields
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch extractDetail(err, adapter.ErrUnauthorized) {
		case app.MsgInvalidUser, app.MsgInvalidUID:
			return ErrNotSignedIn
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		if extractDetail(err, adapter.ErrNotFound) == app.MsgUserNotFound {
			return ErrUserNotFound
		}
		return ErrNotFound

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrVaultUnavailable

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrVaultFailure, err)
	}

	return err
}

// extractDetail returns the backend detail that follows sentinel in err's
// message, e.g. "Password not found" from
// "get password: not found: Password not found".
func extractDetail(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if idx := strings.Index(msg, marker); idx != -1 {
		return msg[idx+len(marker):]
	}
	return ""
}
