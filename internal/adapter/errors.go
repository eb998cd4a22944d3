package adapter

import "errors"

// Vault backend errors, mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedStatus is returned for a 2xx response whose in-body
	// status field reports something other than 200.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrTransport wraps failures that happened before any response was
	// received (DNS, connection refused, timeout).
	ErrTransport = errors.New("vault unreachable")

	// ErrNoToken is returned when the token source has no token to offer.
	ErrNoToken = errors.New("no id token available")
)

// Identity provider errors, mapped from the provider's error codes.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrTokenRevoked       = errors.New("refresh token revoked or expired")
	ErrUserDisabled       = errors.New("user account disabled")
	ErrTooManyAttempts    = errors.New("too many attempts, try again later")
	ErrIdentityProvider   = errors.New("identity provider error")
)
