package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CART_STORE", "memory")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.local/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetCatalogBaseURL() != "http://catalog.local/api/" {
		t.Fatalf("expected trailing slash, got %q", cfg.GetCatalogBaseURL())
	}
	if cfg.GetCartKey() != "cart" {
		t.Fatalf("expected cart key, got %q", cfg.GetCartKey())
	}
	if cfg.GetCartQuantityMin() != 1 || cfg.GetCartQuantityMax() != 100 {
		t.Fatalf("expected bounds 1..100, got %d..%d", cfg.GetCartQuantityMin(), cfg.GetCartQuantityMax())
	}
	if cfg.GetCatalogTimeout() != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.GetCatalogTimeout())
	}
	if cfg.GetPriceLocale() != "fr-FR" {
		t.Fatalf("expected fr-FR, got %q", cfg.GetPriceLocale())
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("CART_STORE", "sessionStorage")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "CART_STORE") {
		t.Fatalf("expected CART_STORE error, got %v", err)
	}
}

func TestLoadRequiresRedisURLForRedisStore(t *testing.T) {
	t.Setenv("CART_STORE", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "REDIS_URL") {
		t.Fatalf("expected REDIS_URL error, got %v", err)
	}
}

func TestLoadRejectsInvertedBounds(t *testing.T) {
	t.Setenv("CART_STORE", "memory")
	t.Setenv("CART_QUANTITY_MIN", "5")
	t.Setenv("CART_QUANTITY_MAX", "2")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "CART_QUANTITY_MAX") {
		t.Fatalf("expected bounds error, got %v", err)
	}
}

func TestWildcardOriginForcesAllowAll(t *testing.T) {
	t.Setenv("CART_STORE", "memory")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatal("expected allow-all CORS")
	}
}
