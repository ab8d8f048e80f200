// Package migrations embeds the SQL migration files and applies them with
// goose. The server runs Up at start-up; integration tests run it in TestMain.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path
// at runtime.
//
//go:embed *.sql
var FS embed.FS

// Up applies every pending migration to db and logs each one applied.
// db must use a Postgres driver (the pgx stdlib driver registers as "pgx").
func Up(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return fmt.Errorf("migrations.Up: create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations.Up: %w", err)
	}
	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return nil
}
