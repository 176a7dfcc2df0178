package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type execCall struct {
	sql  string
	args []any
}

type fakePool struct {
	row   fakeRow
	execs []execCall
	tag   string
	err   error
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.execs = append(p.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag(p.tag), p.err
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row { return p.row }
func (p *fakePool) Ping(context.Context) error                       { return p.err }

func TestPostgresStoreGetTreatsNoRowsAsAbsent(t *testing.T) {
	store := NewPostgresStore(&fakePool{row: fakeRow{err: pgx.ErrNoRows}}, 0)

	_, ok, err := store.Get(context.Background(), "cart:s1")
	if err != nil || ok {
		t.Fatalf("expected absent without error, got ok=%v err=%v", ok, err)
	}
}

func TestPostgresStoreGetReturnsValue(t *testing.T) {
	store := NewPostgresStore(&fakePool{row: fakeRow{value: "[]"}}, 0)

	value, ok, err := store.Get(context.Background(), "cart:s1")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("expected [] present, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestPostgresStoreSetUpsertsWithExpiry(t *testing.T) {
	pool := &fakePool{tag: "INSERT 0 1"}
	store := NewPostgresStore(pool, time.Hour)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	if err := store.Set(context.Background(), "cart:s1", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	if len(pool.execs) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(pool.execs))
	}
	call := pool.execs[0]
	if !strings.Contains(call.sql, "ON CONFLICT (key) DO UPDATE") {
		t.Fatalf("expected upsert statement, got %s", call.sql)
	}
	expiresAt, ok := call.args[3].(*time.Time)
	if !ok || expiresAt == nil || !expiresAt.Equal(fixed.Add(time.Hour)) {
		t.Fatalf("expected expires_at %v, got %#v", fixed.Add(time.Hour), call.args[3])
	}
}

func TestPostgresStoreSetWrapsFailure(t *testing.T) {
	boom := errors.New("disk full")
	store := NewPostgresStore(&fakePool{err: boom}, 0)

	if err := store.Set(context.Background(), "cart:s1", "[]"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped disk full error, got %v", err)
	}
}

func TestPostgresStoreDeleteExpiredReportsRows(t *testing.T) {
	store := NewPostgresStore(&fakePool{tag: "DELETE 3"}, time.Hour)

	n, err := store.DeleteExpired(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("expected 3 rows, got %d err=%v", n, err)
	}
}
