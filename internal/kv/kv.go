// internal/kv/kv.go
//
// Abstract key-value store backing everything the core persists: generated
// puzzle overrides, anti-repetition progress, completion records, and the
// score ledger. Implementations may be backed by memory (ephemeral/tests)
// or SQLite (durable).

package kv

import "errors"

// ErrWrite flags a failed persistence write. Callers treat it as soft: the
// in-memory state stays authoritative for the session and the write is
// retried on the next mutation.
var ErrWrite = errors.New("kv: write failed")

// Store is the persistence interface.
type Store interface {
	// Get returns the value for key, and whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string) error
}
