// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the signed-in user's identity for the lifetime of a
// client process.
//
// A [Manager] signs users in through the identity provider, persists the
// resulting tokens locally so later invocations can restore them, and keeps
// the ID token fresh. Each [Session] derives the envelope key from the
// user's UID on first use and destroys it on close.
package session

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/amnplus-client/internal/crypto"
	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/models"
)

// Session is one signed-in identity together with its lazily derived
// envelope key.
type Session struct {
	mu       sync.Mutex
	identity models.Identity
	cipher   crypto.EnvelopeCipher
	key      *crypto.DerivedKey
	logger   *logger.Logger
}

func newSession(identity models.Identity, cipher crypto.EnvelopeCipher, log *logger.Logger) *Session {
	return &Session{identity: identity, cipher: cipher, logger: log}
}

// Identity returns a copy of the current identity.
func (s *Session) Identity() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// UID returns the stable user identifier.
func (s *Session) UID() string {
	return s.Identity().UID
}

// Key returns the envelope key for this session, deriving it on the first
// call. An empty UID still yields a key, but one shared by every user
// without a UID, so it is logged.
func (s *Session) Key() (*crypto.DerivedKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	if s.identity.UID == "" {
		s.logger.Warn().Msg("deriving envelope key from an empty uid")
	}

	key, err := s.cipher.DeriveKey(s.identity.UID)
	if err != nil {
		return nil, fmt.Errorf("derive envelope key: %w", err)
	}
	s.key = key

	return key, nil
}

// updateTokens swaps in refreshed tokens. The derived key survives because
// the UID does not change across a refresh.
func (s *Session) updateTokens(refreshed models.Identity) models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity.IDToken = refreshed.IDToken
	s.identity.RefreshToken = refreshed.RefreshToken
	s.identity.ExpiresAt = refreshed.ExpiresAt
	if refreshed.Email != "" {
		s.identity.Email = refreshed.Email
	}
	if refreshed.DisplayName != "" {
		s.identity.DisplayName = refreshed.DisplayName
	}

	return s.identity
}

// Close wipes the derived key.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		s.key.Destroy()
		s.key = nil
	}
}
