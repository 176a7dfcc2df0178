// Command cart-janitor deletes expired carts from the Postgres cart store.
// Redis expires carts on its own, so the janitor only runs against Postgres.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/cart/repository"
	"storefront/platform/config"
	"storefront/platform/db"
	"storefront/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	if cfg.GetCartStore() != config.StorePostgres {
		log.Info("cart store does not need sweeping; exiting", "cartStore", cfg.GetCartStore())
		return
	}
	log.Info("starting cart janitor", "env", cfg.Env, "interval", cfg.GetCartSweepInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}

	store := repository.NewPostgresStore(pool, cfg.GetCartTTL())

	ticker := time.NewTicker(cfg.GetCartSweepInterval())
	defer ticker.Stop()

	for {
		sweep(ctx, store, log)
		select {
		case <-ctx.Done():
			log.Info("cart janitor stopped")
			return
		case <-ticker.C:
		}
	}
}

func sweep(ctx context.Context, store *repository.PostgresStore, log *logger.Logger) {
	removed, err := store.DeleteExpired(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("cart sweep failed", "error", err)
		}
		return
	}
	if removed > 0 {
		log.Info("expired carts removed", "count", removed)
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
