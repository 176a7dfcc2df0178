package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgQuerier is the subset of *pgxpool.Pool used by PostgresStore.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore keeps blobs in the cart_blobs table. Expired rows read as absent.
type PostgresStore struct {
	pool pgQuerier
	ttl  time.Duration
	now  func() time.Time
}

// NewPostgresStore creates a store over pool. A positive ttl sets expires_at.
func NewPostgresStore(pool pgQuerier, ttl time.Duration) *PostgresStore {
	return &PostgresStore{pool: pool, ttl: ttl, now: time.Now}
}

// Compile-time check that PostgresStore implements BlobStore.
var _ BlobStore = (*PostgresStore)(nil)

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value FROM cart_blobs
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`

	var value string
	if err := s.pool.QueryRow(ctx, query, key, s.now()).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cart blob: %w", err)
	}
	return value, true, nil
}

// Set upserts the whole value in one statement.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO cart_blobs (key, value, updated_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at`

	now := s.now()
	var expiresAt *time.Time
	if s.ttl > 0 {
		t := now.Add(s.ttl)
		expiresAt = &t
	}

	if _, err := s.pool.Exec(ctx, query, key, value, now, expiresAt); err != nil {
		return fmt.Errorf("set cart blob: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cart_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete cart blob: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// DeleteExpired removes rows whose expires_at has passed and returns how many went.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cart_blobs WHERE expires_at IS NOT NULL AND expires_at <= $1`, s.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired cart blobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
