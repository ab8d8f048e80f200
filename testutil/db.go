// Package testutil holds the database plumbing shared by integration tests.
// Everything here is gated on TEST_DATABASE_URL: without it the calling test
// is skipped, so `go test ./...` stays green on machines with no Postgres.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// DSNVar is the environment variable that opts a run into integration tests.
const DSNVar = "TEST_DATABASE_URL"

// NewPool returns a pinged pool for the test database, closed on cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := openPool(context.Background(), dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction that is rolled back when the test ends. Repos
// built on it see their own writes while nothing is ever committed, so tests
// sharing one database cannot observe each other's rows.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	pool := NewPool(t)
	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	// Registered after the pool's Close, so it runs first.
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB returns a database/sql view of a test pool, for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MustOpenSQLDB is NewSQLDB for TestMain, where there is no *testing.T.
// It panics on failure. Callers close the returned handle.
func MustOpenSQLDB(dsn string) *sql.DB {
	// Importing stdlib registers the "pgx" driver.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func dsn(t *testing.T) string {
	t.Helper()
	v := os.Getenv(DSNVar)
	if v == "" {
		t.Skip(DSNVar + " not set; skipping integration test")
	}
	return v
}
