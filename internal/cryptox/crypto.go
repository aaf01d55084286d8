// Package cryptox implements the at-rest protection used by the secure
// keystore: a key derived from a per-device secret via argon2id, and
// AES-GCM sealing of individual values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/argon2"

	"github.com/dmuwanga/ohns-backoffice/internal/common"
)

const nonceSize = 12

// ErrCiphertextTooShort is returned when a sealed blob is shorter than the
// prepended nonce and cannot possibly be valid.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveStoreKey stretches the device secret into a 32-byte AES key.
// Parameters follow the argon2id recommendations (1 pass, 64 MiB, 4 lanes).
func DeriveStoreKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key. The random nonce is
// prepended to the ciphertext so a sealed value is a single opaque blob.
func Seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	return append(nonce, aesgcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// Open decrypts a blob produced by Seal.
func Open(key, blob []byte) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
}
