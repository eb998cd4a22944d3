package crypto

import "errors"

var (
	// ErrCipherUnavailable is returned when the AEAD primitive cannot be
	// constructed or the system random source fails. It indicates an
	// unsupported environment, not a bad secret.
	ErrCipherUnavailable = errors.New("cipher primitive unavailable")

	// ErrInvalidNonce is returned when an envelope's nonce is not exactly
	// [NonceSize] bytes long.
	ErrInvalidNonce = errors.New("invalid nonce length")

	// ErrCiphertextTooShort is returned when an envelope's ciphertext cannot
	// even hold the authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrIntegrity is returned when the authentication tag does not verify.
	ErrIntegrity = errors.New("envelope integrity check failed")
)
