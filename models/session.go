package models

import "time"

// Identity is what the identity provider returns after a successful sign-in,
// sign-up or token refresh.
type Identity struct {
	// UID is the stable per-user identifier. Secrets are encrypted under a
	// key derived from it.
	UID          string
	Email        string
	DisplayName  string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the ID token expires before now+skew.
func (i Identity) Expired(now time.Time, skew time.Duration) bool {
	if i.ExpiresAt.IsZero() {
		return true
	}
	return !now.Add(skew).Before(i.ExpiresAt)
}

