// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/amnplus-client/models"
)

const (
	// KeySize is the derived key length (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length (96 bits).
	NonceSize = 12
	// TagSize is the GCM authentication tag length appended to ciphertexts.
	TagSize = 16

	// DefaultIterations is the PBKDF2 iteration count of the web client.
	DefaultIterations = 100000

	// DefaultSalt is used when no deployment salt is configured. It is not
	// the web client's salt: envelopes written by the web client open only
	// when the salt is set to the web client's literal (APP_KDF_SALT or
	// --kdf-salt), otherwise they fail with ErrIntegrity.
	DefaultSalt = "amnplus-vault-envelope-salt"
)

// KDFParams tunes key derivation. The zero value is replaced by the
// defaults in [NewEnvelopeCipher].
type KDFParams struct {
	// Salt is mixed into every derivation. It is shared by all users of a
	// deployment.
	Salt []byte

	// Iterations is the PBKDF2 round count.
	Iterations int
}

// DefaultKDFParams returns [DefaultSalt] and [DefaultIterations].
func DefaultKDFParams() KDFParams {
	return KDFParams{Salt: []byte(DefaultSalt), Iterations: DefaultIterations}
}

// DerivedKey is symmetric key material bound to one user identifier. It is
// recomputed on demand and never persisted or serialised.
type DerivedKey struct {
	material []byte
	aead     cipher.AEAD
}

// Equal reports whether k and other hold the same key material. The
// comparison is constant time.
func (k *DerivedKey) Equal(other *DerivedKey) bool {
	if k == nil || other == nil || k.material == nil || other.material == nil {
		return false
	}
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// Destroy zeroes the key material and makes k unusable. Safe to call more
// than once and on a nil key.
func (k *DerivedKey) Destroy() {
	if k == nil {
		return
	}
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
	k.aead = nil
}

// String keeps key material out of logs and fmt output.
func (k *DerivedKey) String() string {
	return "DerivedKey(redacted)"
}

func (k *DerivedKey) usable() bool {
	return k != nil && k.aead != nil
}

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct {
	salt       []byte
	iterations int

	// random is the nonce source; crypto/rand outside tests.
	random io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] with the given KDF
// parameters. An empty salt or a non-positive iteration count falls back to
// [DefaultSalt] and [DefaultIterations].
func NewEnvelopeCipher(params KDFParams) EnvelopeCipher {
	return newEnvelopeCipher(params, rand.Reader)
}

func newEnvelopeCipher(params KDFParams, random io.Reader) *envelopeCipher {
	salt := params.Salt
	if len(salt) == 0 {
		salt = []byte(DefaultSalt)
	}
	iterations := params.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	return &envelopeCipher{
		salt:       append([]byte(nil), salt...),
		iterations: iterations,
		random:     random,
	}
}

// DeriveKey implements [EnvelopeCipher]. It runs PBKDF2-HMAC-SHA256 over the
// UTF-8 bytes of identifier and prepares the AES-256-GCM AEAD once so that
// every Encrypt/Decrypt with the key can reuse it.
func (c *envelopeCipher) DeriveKey(identifier string) (*DerivedKey, error) {
	material := pbkdf2.Key([]byte(identifier), c.salt, c.iterations, KeySize, sha256.New)

	aead, err := newAEAD(material)
	if err != nil {
		return nil, err
	}

	return &DerivedKey{material: material, aead: aead}, nil
}

// Encrypt implements [EnvelopeCipher]. A new 12-byte nonce is read from the
// random source on every call; no additional data is authenticated.
func (c *envelopeCipher) Encrypt(plaintext string, key *DerivedKey) (models.Envelope, error) {
	if !key.usable() {
		return models.Envelope{}, fmt.Errorf("%w: key is not initialised", ErrCipherUnavailable)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: generate nonce: %v", ErrCipherUnavailable, err)
	}

	ciphertext := key.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return models.Envelope{IV: nonce, Ciphertext: ciphertext}, nil
}

// Decrypt implements [EnvelopeCipher]. Lengths are checked before the AEAD
// is touched so malformed envelopes are reported distinctly from tampered
// ones.
func (c *envelopeCipher) Decrypt(envelope models.Envelope, key *DerivedKey) (string, error) {
	if !key.usable() {
		return "", fmt.Errorf("%w: key is not initialised", ErrCipherUnavailable)
	}
	if len(envelope.IV) != NonceSize {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidNonce, len(envelope.IV), NonceSize)
	}
	if len(envelope.Ciphertext) < TagSize {
		return "", fmt.Errorf("%w: got %d bytes, want at least %d", ErrCiphertextTooShort, len(envelope.Ciphertext), TagSize)
	}

	plaintext, err := key.aead.Open(nil, envelope.IV, envelope.Ciphertext, nil)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plaintext), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrCipherUnavailable, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %v", ErrCipherUnavailable, err)
	}

	return gcm, nil
}
