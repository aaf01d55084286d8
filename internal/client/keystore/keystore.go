// Package keystore is the platform-abstracted persistent store for the
// session credential.
//
// Callers see a single Store capability set {Get, Set, Delete}; which backing
// actually holds the data is decided once at startup by Open and never leaks
// into business logic. Values are JSON-serialized before persistence and
// deserialized on read, so structured data round-trips as text.
package keystore

import "context"

// Store is the persistent key-value capability used for the session
// credential. Implementations are safe for concurrent use.
type Store interface {
	// Get loads the value stored under key into v. It reports found=false
	// (and no error) when the key is absent.
	Get(ctx context.Context, key string, v any) (found bool, err error)

	// Set serializes v and persists it under key, replacing any prior value.
	Set(ctx context.Context, key string, v any) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backing.
	Close() error
}
