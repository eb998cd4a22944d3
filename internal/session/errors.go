package session

import "errors"

var (
	// ErrNotSignedIn is returned when an operation needs a session and none
	// has been established or restored.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrSessionExpired is returned when the ID token can no longer be
	// refreshed and the user has to sign in again.
	ErrSessionExpired = errors.New("session expired, sign in again")
)
