package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by a BlobStore that refuses a value for size.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// BlobStore is a flat string-keyed store of serialized values. Writes replace
// the whole value or fail leaving the previous value in place.
type BlobStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// StorageError is a failed read or write against the cart slot.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cart storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
