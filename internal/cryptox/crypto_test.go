package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	key := DeriveKey([]byte("device-secret"))
	assert.Len(t, key, 32)

	// Deterministic for the same secret, distinct for different ones.
	assert.Equal(t, key, DeriveKey([]byte("device-secret")))
	assert.NotEqual(t, key, DeriveKey([]byte("other-secret")))
}

func TestLoadOrCreateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.secret")

	secret, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Len(t, secret, 64)

	// A second load returns the persisted value, not a new one.
	again, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Equal(t, secret, again)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := DeriveKey([]byte("device-secret"))

	ciphertext, nonce, err := EncryptString("camera-password", key)
	require.NoError(t, err)
	assert.Len(t, nonce, 12)
	assert.NotContains(t, string(ciphertext), "camera-password")

	plain, err := DecryptString(ciphertext, nonce, key)
	require.NoError(t, err)
	assert.Equal(t, "camera-password", plain)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	key := DeriveKey([]byte("device-secret"))
	ciphertext, nonce, err := EncryptString("camera-password", key)
	require.NoError(t, err)

	_, err = DecryptString(ciphertext, nonce, DeriveKey([]byte("other-secret")))
	require.Error(t, err)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey([]byte("device-secret"))

	c1, n1, err := EncryptString("same-plaintext", key)
	require.NoError(t, err)
	c2, n2, err := EncryptString("same-plaintext", key)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, c1, c2)
}
