// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cart store drivers accepted by CART_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// RedisConfig provides Redis connection settings.
type RedisConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CatalogConfig provides settings for the product API client.
type CatalogConfig interface {
	GetCatalogBaseURL() string
	GetCatalogTimeout() time.Duration
}

// CartConfig provides settings for cart persistence and input bounds.
type CartConfig interface {
	GetCartStore() string
	GetCartKey() string
	GetCartTTL() time.Duration
	GetCartSweepInterval() time.Duration
	GetCartQuantityMin() int
	GetCartQuantityMax() int
	GetPriceLocale() string
}

// SessionConfig provides settings for the shopper session cookie.
type SessionConfig interface {
	GetSessionCookieName() string
	GetSessionCookieSecure() bool
	GetSessionTTL() time.Duration
}

// RateLimitConfig provides settings for the checkout rate limiter.
type RateLimitConfig interface {
	GetCheckoutPerMinute() int
	GetCheckoutBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	CatalogBaseURL      string
	CatalogTimeout      time.Duration
	CartStore           string
	CartKey             string
	CartTTL             time.Duration
	CartSweepInterval   time.Duration
	CartQuantityMin     int
	CartQuantityMax     int
	PriceLocale         string
	RedisURL            string
	RedisTLSInsecure    bool
	DatabaseURL         string
	SessionCookieName   string
	SessionCookieSecure bool
	SessionTTL          time.Duration
	CheckoutPerMinute   int
	CheckoutBurst       int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// RedisConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CatalogConfig implementation
func (c *Config) GetCatalogBaseURL() string        { return c.CatalogBaseURL }
func (c *Config) GetCatalogTimeout() time.Duration { return c.CatalogTimeout }

// CartConfig implementation
func (c *Config) GetCartStore() string      { return c.CartStore }
func (c *Config) GetCartKey() string        { return c.CartKey }
func (c *Config) GetCartTTL() time.Duration { return c.CartTTL }
func (c *Config) GetCartSweepInterval() time.Duration {
	return c.CartSweepInterval
}
func (c *Config) GetCartQuantityMin() int   { return c.CartQuantityMin }
func (c *Config) GetCartQuantityMax() int   { return c.CartQuantityMax }
func (c *Config) GetPriceLocale() string    { return c.PriceLocale }

// SessionConfig implementation
func (c *Config) GetSessionCookieName() string { return c.SessionCookieName }
func (c *Config) GetSessionCookieSecure() bool { return c.SessionCookieSecure }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// RateLimitConfig implementation
func (c *Config) GetCheckoutPerMinute() int { return c.CheckoutPerMinute }
func (c *Config) GetCheckoutBurst() int     { return c.CheckoutBurst }

// Load reads configuration from a .env file (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5500"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	sessionCookieSecure := strings.EqualFold(getEnv("SESSION_COOKIE_SECURE", ""), "true")
	if getEnv("SESSION_COOKIE_SECURE", "") == "" {
		sessionCookieSecure = strings.EqualFold(getEnv("APP_ENV", "development"), "production")
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		CatalogBaseURL:      ensureTrailingSlash(getEnv("CATALOG_BASE_URL", "http://localhost:3000/api/")),
		CatalogTimeout:      mustDuration(getEnv("CATALOG_TIMEOUT", "10s")),
		CartStore:           strings.ToLower(strings.TrimSpace(getEnv("CART_STORE", StoreMemory))),
		CartKey:             getEnv("CART_KEY", "cart"),
		CartTTL:             mustDuration(getEnv("CART_TTL", "720h")),
		CartSweepInterval:   mustDuration(getEnv("CART_SWEEP_INTERVAL", "15m")),
		CartQuantityMin:     mustInt(getEnv("CART_QUANTITY_MIN", "1")),
		CartQuantityMax:     mustInt(getEnv("CART_QUANTITY_MAX", "100")),
		PriceLocale:         getEnv("PRICE_LOCALE", "fr-FR"),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisTLSInsecure:    strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "storefront_session"),
		SessionCookieSecure: sessionCookieSecure,
		SessionTTL:          mustDuration(getEnv("SESSION_TTL", "720h")),
		CheckoutPerMinute:   mustInt(getEnv("CHECKOUT_RATE_PER_MINUTE", "10")),
		CheckoutBurst:       mustInt(getEnv("CHECKOUT_RATE_BURST", "5")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.CatalogBaseURL) == "/" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	switch c.CartStore {
	case StoreMemory:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CART_STORE is redis")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CART_STORE is postgres")
		}
	default:
		return fmt.Errorf("CART_STORE must be one of memory, redis, postgres (got %q)", c.CartStore)
	}
	if strings.TrimSpace(c.CartKey) == "" {
		return fmt.Errorf("CART_KEY must not be empty")
	}
	if c.CartQuantityMin < 1 {
		return fmt.Errorf("CART_QUANTITY_MIN must be at least 1")
	}
	if c.CartQuantityMax < c.CartQuantityMin {
		return fmt.Errorf("CART_QUANTITY_MAX must be >= CART_QUANTITY_MIN")
	}
	if c.CartSweepInterval <= 0 {
		return fmt.Errorf("CART_SWEEP_INTERVAL must be a positive duration")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func ensureTrailingSlash(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
