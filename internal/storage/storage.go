// Package storage is the persistence adapter: named JSON blobs in a
// durable local key-value store. Callers treat it as opaque; absence of
// a key means an empty collection, never an error.
package storage

import "fmt"

// KV is the key-value persistence contract the entity store saves
// snapshots through.
type KV interface {
	// Get returns the blob stored under key, or (nil, nil) if absent.
	Get(key string) ([]byte, error)
	// Put overwrites the blob stored under key.
	Put(key string, data []byte) error
	// Delete removes key; removing an absent key is not an error.
	Delete(key string) error
}

// Error wraps an underlying storage failure with the key and operation
// that hit it.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
