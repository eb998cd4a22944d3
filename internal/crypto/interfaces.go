// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side encryption envelope used for
// every secret stored in the vault.
//
// Secrets never leave the client in plaintext. A symmetric key is derived
// from the stable per-user identifier supplied by the identity provider,
// and each secret is sealed separately with AES-256-GCM under a fresh
// random nonce:
//
//	key      = PBKDF2-HMAC-SHA256(uid, salt, 100000 iterations, 32 bytes)
//	envelope = { iv: random(12), ciphertext: AES-GCM(key, iv, utf8(secret)) }
//
// The vault backend only ever stores and returns envelopes.
package crypto

import "github.com/MKhiriev/amnplus-client/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

// EnvelopeCipher derives per-user keys and seals/opens single secrets.
// Implementations hold no mutable state and are safe for concurrent use.
type EnvelopeCipher interface {
	// DeriveKey deterministically turns identifier into a 256-bit key. The
	// same identifier always yields the same key. An empty identifier is
	// accepted and produces a key tied to the empty string; callers decide
	// whether to warn about it.
	DeriveKey(identifier string) (*DerivedKey, error)

	// Encrypt seals plaintext under key with a freshly generated nonce and
	// returns the resulting envelope. It fails only when randomness or the
	// cipher primitive is unavailable.
	Encrypt(plaintext string, key *DerivedKey) (models.Envelope, error)

	// Decrypt opens envelope with key and returns the original plaintext.
	// It returns [ErrInvalidNonce] or [ErrCiphertextTooShort] for malformed
	// envelopes and [ErrIntegrity] when the tag does not verify (tampered
	// data or a key derived from a different identifier).
	Decrypt(envelope models.Envelope, key *DerivedKey) (string, error)
}
