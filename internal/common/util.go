package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system RNG fails, which is unrecoverable anyway.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the slice with zeroes. Used to shorten the
// lifetime of passwords and derived keys in memory.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
