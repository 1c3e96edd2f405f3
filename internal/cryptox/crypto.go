// Package cryptox holds the crypto used to protect stored connection-profile
// credentials: argon2id key derivation from a per-device secret, AES-GCM for
// the password at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"os"

	"github.com/pliablepixels/zmng/internal/common"
	"golang.org/x/crypto/argon2"
)

// deviceSalt is a fixed application salt mixed into the device secret.
// The secret itself is random per device; the salt only domain-separates it.
var deviceSalt = []byte("zmng.profile.store.v1")

// DeriveKey stretches a device secret into a 32-byte AES key.
func DeriveKey(secret []byte) []byte {
	return argon2.IDKey(secret, deviceSalt, 1, 64*1024, 4, 32)
}

// LoadOrCreateSecret reads the device secret from path, generating and
// persisting a new random one on first use.
func LoadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		return data, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	secret, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

// EncryptString encrypts plain with AES-GCM under key. A fresh 12-byte nonce
// is generated per call and returned alongside the ciphertext.
func EncryptString(plain string, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, []byte(plain), nil)
	return ciphertext, nonce, nil
}

// DecryptString reverses EncryptString. The key and nonce must match the
// ones used for encryption.
func DecryptString(ciphertext, nonce, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plain, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
