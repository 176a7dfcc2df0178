package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/cart/domain"
	"storefront/platform/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), srv
}

func TestRedisStoreGetMissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t, 0)

	_, ok, err := store.Get(context.Background(), "cart:none")
	if err != nil || ok {
		t.Fatalf("expected absent key without error, got ok=%v err=%v", ok, err)
	}
}

func TestRedisStoreSetAppliesTTL(t *testing.T) {
	store, srv := newTestRedisStore(t, time.Hour)

	if err := store.Set(context.Background(), "cart:s1", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := srv.TTL("cart:s1"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	srv.FastForward(2 * time.Hour)
	if _, ok, _ := store.Get(context.Background(), "cart:s1"); ok {
		t.Fatal("expected key to expire")
	}
}

func TestRedisBackedRepositoryRecoversFromCorruption(t *testing.T) {
	store, srv := newTestRedisStore(t, 0)
	repo := New(store, "cart", logger.Discard())

	if err := srv.Set("cart:s1", "<html>"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if cart := repo.GetCart(context.Background(), "s1"); len(cart) != 0 {
		t.Fatalf("expected empty cart, got %#v", cart)
	}

	want := domain.Cart{{ProductID: "a", Color: "Blue", Quantity: 4}}
	if err := repo.SaveCart(context.Background(), "s1", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := repo.GetCart(context.Background(), "s1"); len(got) != 1 || got[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if err := store.Delete(context.Background(), "cart:s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if srv.Exists("cart:s1") {
		t.Fatal("expected key to be deleted")
	}
}

func TestRedisStoreReadFailureDegradesToEmptyCart(t *testing.T) {
	store, srv := newTestRedisStore(t, 0)
	repo := New(store, "cart", logger.Discard())
	srv.Close()

	if cart := repo.GetCart(context.Background(), "s1"); len(cart) != 0 {
		t.Fatalf("expected empty cart when redis is down, got %#v", cart)
	}
	if err := repo.SaveCart(context.Background(), "s1", domain.Cart{}); err == nil {
		t.Fatal("expected write failure when redis is down")
	}
}
