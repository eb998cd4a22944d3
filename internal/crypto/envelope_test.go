package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/amnplus-client/models"
)

// fastCipher keeps the iteration count low; the KDF cost is irrelevant to
// the envelope properties under test.
func fastCipher(t *testing.T) EnvelopeCipher {
	t.Helper()
	return NewEnvelopeCipher(KDFParams{Salt: []byte("test-salt"), Iterations: 1000})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestDeriveKey_Deterministic(t *testing.T) {
	svc := fastCipher(t)

	k1, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)
	k2, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)

	assert.True(t, k1.Equal(k2), "same identifier must yield the same key")
	assert.Len(t, k1.material, KeySize)
}

func TestDeriveKey_DifferentIdentifiersDiffer(t *testing.T) {
	svc := fastCipher(t)

	k1, err := svc.DeriveKey("alice")
	require.NoError(t, err)
	k2, err := svc.DeriveKey("bob")
	require.NoError(t, err)

	assert.False(t, k1.Equal(k2))
}

func TestDeriveKey_MatchesPBKDF2SHA256(t *testing.T) {
	svc := NewEnvelopeCipher(DefaultKDFParams())

	key, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)

	want := pbkdf2.Key([]byte("uid-123"), []byte(DefaultSalt), DefaultIterations, KeySize, sha256.New)
	assert.Equal(t, want, key.material)
}

func TestDeriveKey_SaltChangesKey(t *testing.T) {
	a := NewEnvelopeCipher(KDFParams{Salt: []byte("deployment-a"), Iterations: 1000})
	b := NewEnvelopeCipher(KDFParams{Salt: []byte("deployment-b"), Iterations: 1000})

	ka, err := a.DeriveKey("uid")
	require.NoError(t, err)
	kb, err := b.DeriveKey("uid")
	require.NoError(t, err)

	assert.False(t, ka.Equal(kb))
}

func TestDeriveKey_EmptyIdentifierTolerated(t *testing.T) {
	svc := fastCipher(t)

	key, err := svc.DeriveKey("")
	require.NoError(t, err)

	env, err := svc.Encrypt("secret", key)
	require.NoError(t, err)
	got, err := svc.Decrypt(env, key)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestNewEnvelopeCipher_Defaults(t *testing.T) {
	c := newEnvelopeCipher(KDFParams{}, nil)

	assert.Equal(t, []byte(DefaultSalt), c.salt)
	assert.Equal(t, DefaultIterations, c.iterations)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "empty", plaintext: ""},
		{name: "ascii", plaintext: "hunter2"},
		{name: "unicode", plaintext: "пароль-密码-🔑"},
		{name: "long", plaintext: string(bytes.Repeat([]byte("x"), 10_000))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := svc.Encrypt(tt.plaintext, key)
			require.NoError(t, err)
			assert.Len(t, env.IV, NonceSize)
			assert.Len(t, env.Ciphertext, len(tt.plaintext)+TagSize)

			got, err := svc.Decrypt(env, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEncrypt_FreshNonceEveryCall(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)

	e1, err := svc.Encrypt("same plaintext", key)
	require.NoError(t, err)
	e2, err := svc.Encrypt("same plaintext", key)
	require.NoError(t, err)

	assert.NotEqual(t, e1.IV, e2.IV)
	assert.NotEqual(t, e1.Ciphertext, e2.Ciphertext)
}

func TestEncrypt_InteroperatesWithPlainGCM(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid-123")
	require.NoError(t, err)

	env, err := svc.Encrypt("cross-check", key)
	require.NoError(t, err)

	block, err := aes.NewCipher(key.material)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	plain, err := gcm.Open(nil, env.IV, env.Ciphertext, nil)
	require.NoError(t, err)
	assert.Equal(t, "cross-check", string(plain))
}

// sealLikeWebClient seals plaintext the way the web client does: PBKDF2
// over the uid with SHA-256 at DefaultIterations, then AES-GCM with a
// random 12-byte IV and no additional data.
func sealLikeWebClient(t *testing.T, uid string, salt []byte, plaintext string) models.Envelope {
	t.Helper()

	key := pbkdf2.Key([]byte(uid), salt, DefaultIterations, KeySize, sha256.New)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	iv := bytes.Repeat([]byte{0x42}, NonceSize)
	return models.Envelope{IV: iv, Ciphertext: gcm.Seal(nil, iv, []byte(plaintext), nil)}
}

func TestDecrypt_WebClientEnvelopeWithConfiguredSalt(t *testing.T) {
	deploymentSalt := []byte("deployment-salt-from-APP_KDF_SALT")
	env := sealLikeWebClient(t, "uid-1", deploymentSalt, "hunter2")

	svc := NewEnvelopeCipher(KDFParams{Salt: deploymentSalt, Iterations: DefaultIterations})
	key, err := svc.DeriveKey("uid-1")
	require.NoError(t, err)

	got, err := svc.Decrypt(env, key)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestDecrypt_WebClientEnvelopeNeedsMatchingSalt(t *testing.T) {
	env := sealLikeWebClient(t, "uid-1", []byte("deployment-salt-from-APP_KDF_SALT"), "hunter2")

	svc := NewEnvelopeCipher(DefaultKDFParams())
	key, err := svc.DeriveKey("uid-1")
	require.NoError(t, err)

	_, err = svc.Decrypt(env, key)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestEncrypt_RandomSourceFailure(t *testing.T) {
	svc := newEnvelopeCipher(KDFParams{Iterations: 1000}, failingReader{})
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	_, err = svc.Encrypt("secret", key)
	assert.ErrorIs(t, err, ErrCipherUnavailable)
}

func TestDecrypt_WrongIdentifierFails(t *testing.T) {
	svc := fastCipher(t)
	alice, err := svc.DeriveKey("alice")
	require.NoError(t, err)
	bob, err := svc.DeriveKey("bob")
	require.NoError(t, err)

	env, err := svc.Encrypt("alice's secret", alice)
	require.NoError(t, err)

	_, err = svc.Decrypt(env, bob)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestDecrypt_BitFlipFails(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	env, err := svc.Encrypt("do not touch", key)
	require.NoError(t, err)

	for i := range env.Ciphertext {
		tampered := models.Envelope{
			IV:         env.IV,
			Ciphertext: append(models.ByteArray(nil), env.Ciphertext...),
		}
		tampered.Ciphertext[i] ^= 0x01

		_, err := svc.Decrypt(tampered, key)
		require.ErrorIs(t, err, ErrIntegrity, "flip at byte %d must be detected", i)
	}
}

func TestDecrypt_TamperedNonceFails(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	env, err := svc.Encrypt("secret", key)
	require.NoError(t, err)
	env.IV[0] ^= 0x80

	_, err = svc.Decrypt(env, key)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	tests := []struct {
		name    string
		env     models.Envelope
		wantErr error
	}{
		{name: "empty", env: models.Envelope{}, wantErr: ErrInvalidNonce},
		{name: "short nonce", env: models.Envelope{IV: make([]byte, 8), Ciphertext: make([]byte, 32)}, wantErr: ErrInvalidNonce},
		{name: "long nonce", env: models.Envelope{IV: make([]byte, 16), Ciphertext: make([]byte, 32)}, wantErr: ErrInvalidNonce},
		{name: "ciphertext shorter than tag", env: models.Envelope{IV: make([]byte, NonceSize), Ciphertext: make([]byte, TagSize-1)}, wantErr: ErrCiphertextTooShort},
		{name: "zero tag only", env: models.Envelope{IV: make([]byte, NonceSize), Ciphertext: make([]byte, TagSize)}, wantErr: ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decrypt(tt.env, key)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDestroyedKeyIsUnusable(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)
	env, err := svc.Encrypt("secret", key)
	require.NoError(t, err)

	material := key.material
	key.Destroy()
	key.Destroy()

	assert.Equal(t, make([]byte, KeySize), material, "material must be zeroed")

	_, err = svc.Encrypt("secret", key)
	assert.ErrorIs(t, err, ErrCipherUnavailable)
	_, err = svc.Decrypt(env, key)
	assert.ErrorIs(t, err, ErrCipherUnavailable)

	var nilKey *DerivedKey
	nilKey.Destroy()
	_, err = svc.Decrypt(env, nilKey)
	assert.ErrorIs(t, err, ErrCipherUnavailable)
}

func TestDerivedKey_StringIsRedacted(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	assert.Equal(t, "DerivedKey(redacted)", key.String())
}

func TestEnvelopeCipher_ConcurrentUse(t *testing.T) {
	svc := fastCipher(t)
	key, err := svc.DeriveKey("uid")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, err := svc.Encrypt("parallel", key)
			if err != nil {
				errs <- err
				return
			}
			got, err := svc.Decrypt(env, key)
			if err == nil && got != "parallel" {
				err = errors.New("plaintext mismatch")
			}
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
