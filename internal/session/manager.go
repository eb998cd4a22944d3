package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/store"
	"github.com/MKhiriev/amnplus-client/models"
)

// RefreshSkew is how long before expiry an ID token is already treated as
// expired.
const RefreshSkew = time.Minute

// Manager establishes, restores and refreshes the client session. It
// implements [adapter.TokenSource] so the vault adapter can ask it for a
// valid ID token on every request.
type Manager struct {
	identity adapter.IdentityAdapter
	sessions store.SessionRepository
	cache    store.EnvelopeCache
	cipher   crypto.EnvelopeCipher
	logger   *logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	current *Session
}

// NewManager wires a Manager. cache may be nil, in which case Logout leaves
// cached envelopes in place.
func NewManager(
	identity adapter.IdentityAdapter,
	sessions store.SessionRepository,
	cache store.EnvelopeCache,
	cipher crypto.EnvelopeCipher,
	log *logger.Logger,
) *Manager {
	return &Manager{
		identity: identity,
		sessions: sessions,
		cache:    cache,
		cipher:   cipher,
		logger:   log,
		now:      time.Now,
	}
}

// Login signs in with email and password and persists the resulting tokens.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	identity, err := m.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return m.establish(ctx, identity)
}

// Register creates an account and signs it in.
func (m *Manager) Register(ctx context.Context, email, password string) (*Session, error) {
	identity, err := m.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return m.establish(ctx, identity)
}

func (m *Manager) establish(ctx context.Context, identity models.Identity) (*Session, error) {
	if err := m.sessions.Save(ctx, identity); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s := newSession(identity, m.cipher, m.logger)
	m.swap(s)

	m.logger.Info().Str("uid", identity.UID).Msg("signed in")
	return s, nil
}

// Restore loads the session persisted by an earlier invocation. It returns
// [ErrNotSignedIn] when there is none. The token is not refreshed here; that
// happens on first use.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	if s, err := m.Current(); err == nil {
		return s, nil
	}

	identity, err := m.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s := newSession(identity, m.cipher, m.logger)
	m.swap(s)

	return s, nil
}

// Current returns the active session.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, ErrNotSignedIn
	}
	return m.current, nil
}

// Key returns the envelope key of the active session.
func (m *Manager) Key() (*crypto.DerivedKey, error) {
	s, err := m.Current()
	if err != nil {
		return nil, err
	}
	return s.Key()
}

// UID returns the identifier of the active user.
func (m *Manager) UID() (string, error) {
	s, err := m.Current()
	if err != nil {
		return "", err
	}
	return s.UID(), nil
}

// IDToken returns an ID token that is valid for at least [RefreshSkew],
// refreshing and persisting it when needed. A revoked or disabled refresh
// token ends the session with [ErrSessionExpired].
func (m *Manager) IDToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return "", ErrNotSignedIn
	}

	identity := m.current.Identity()
	if !identity.Expired(m.now(), RefreshSkew) {
		return identity.IDToken, nil
	}

	if identity.RefreshToken == "" {
		m.dropLocked(ctx)
		return "", ErrSessionExpired
	}

	m.logger.Debug().Str("uid", identity.UID).Msg("refreshing id token")

	refreshed, err := m.identity.Refresh(ctx, identity.RefreshToken)
	switch {
	case errors.Is(err, adapter.ErrTokenRevoked), errors.Is(err, adapter.ErrUserDisabled):
		m.dropLocked(ctx)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case err != nil:
		return "", fmt.Errorf("refresh id token: %w", err)
	}

	if refreshed.UID != "" && refreshed.UID != identity.UID {
		m.logger.Warn().
			Str("uid", identity.UID).
			Str("refreshed_uid", refreshed.UID).
			Msg("refresh returned a different uid, keeping the original")
	}

	updated := m.current.updateTokens(refreshed)
	if err := m.sessions.Save(ctx, updated); err != nil {
		m.logger.Err(err).Msg("failed to persist refreshed session")
	}

	return updated.IDToken, nil
}

// Logout forgets the persisted session and the cached envelopes of the
// signed-in user.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var uid string
	if m.current != nil {
		uid = m.current.UID()
	} else if identity, err := m.sessions.Load(ctx); err == nil {
		uid = identity.UID
	}

	if err := m.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if m.cache != nil && uid != "" {
		if err := m.cache.Purge(ctx, uid); err != nil {
			return fmt.Errorf("purge cache: %w", err)
		}
	}

	if m.current != nil {
		m.current.Close()
		m.current = nil
	}

	m.logger.Info().Str("uid", uid).Msg("signed out")
	return nil
}

// Close wipes the active session's key without touching persisted state.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Close()
		m.current = nil
	}
}

func (m *Manager) swap(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Close()
	}
	m.current = s
}

// dropLocked discards the session after the provider refused to refresh
// it. The caller holds m.mu.
func (m *Manager) dropLocked(ctx context.Context) {
	if err := m.sessions.Delete(ctx); err != nil {
		m.logger.Err(err).Msg("failed to delete expired session")
	}
	m.current.Close()
	m.current = nil
}
