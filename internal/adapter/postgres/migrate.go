package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// ErrPendingMigrations is reported by MigrationCheck when the schema lags
// behind the embedded migrations.
var ErrPendingMigrations = errors.New("pending migrations")

func newProvider(db *sql.DB, fsys fs.FS) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending goose migration in fsys using a database/sql
// handle borrowed from pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := newProvider(db, fsys)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// MigrationCheck is a health check that fails while migrations are pending.
type MigrationCheck struct {
	pool *pgxpool.Pool
	fsys fs.FS
}

// NewMigrationCheck creates a MigrationCheck for the migrations in fsys.
func NewMigrationCheck(pool *pgxpool.Pool, fsys fs.FS) *MigrationCheck {
	return &MigrationCheck{pool: pool, fsys: fsys}
}

// Ping returns ErrPendingMigrations when the database is behind fsys.
func (c *MigrationCheck) Ping(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(c.pool)
	defer db.Close()

	provider, err := newProvider(db, c.fsys)
	if err != nil {
		return err
	}
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("goose has pending: %w", err)
	}
	if pending {
		return ErrPendingMigrations
	}
	return nil
}
