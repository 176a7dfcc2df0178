// Package repository persists carts as JSON blobs in a key-value store, one
// slot per shopper session.
package repository

import (
	"context"
	"encoding/json"
	"strings"

	"storefront/internal/cart/domain"
	"storefront/platform/logger"
)

// DefaultKey is the logical slot name of the cart.
const DefaultKey = "cart"

// Repository reads and writes whole carts through a BlobStore.
type Repository struct {
	store BlobStore
	key   string
	log   *logger.Logger
}

// New creates a cart repository. An empty key falls back to DefaultKey.
func New(store BlobStore, key string, log *logger.Logger) *Repository {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	return &Repository{store: store, key: key, log: log}
}

// SlotKey returns the store key holding the cart of sessionID.
func (r *Repository) SlotKey(sessionID string) string {
	if sessionID == "" {
		return r.key
	}
	return r.key + ":" + sessionID
}

// GetCart returns the persisted cart of sessionID. A missing, unreadable or
// corrupt blob yields an empty cart; the failure is logged, never returned.
func (r *Repository) GetCart(ctx context.Context, sessionID string) domain.Cart {
	key := r.SlotKey(sessionID)

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.WithContext(ctx).StorageError("read", key, err)
		return domain.Cart{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		r.log.WithContext(ctx).StorageError("decode", key, err)
		return domain.Cart{}
	}
	return domain.Normalize(cart)
}

// SaveCart replaces the persisted cart of sessionID with cart.
// Any failure is returned as *StorageError and leaves the previous value intact.
func (r *Repository) SaveCart(ctx context.Context, sessionID string, cart domain.Cart) error {
	key := r.SlotKey(sessionID)

	if cart == nil {
		cart = domain.Cart{}
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		r.log.WithContext(ctx).StorageError("encode", key, err)
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := r.store.Set(ctx, key, string(payload)); err != nil {
		r.log.WithContext(ctx).StorageError("write", key, err)
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// ClearCart writes an empty collection to the slot of sessionID.
func (r *Repository) ClearCart(ctx context.Context, sessionID string) error {
	return r.SaveCart(ctx, sessionID, domain.Cart{})
}

// Ping checks the underlying store.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
