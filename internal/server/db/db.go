// Package db opens the record store by DSN and brings its schema up to date.
// A postgres:// (or postgresql://) DSN selects the pgx driver; anything else
// is treated as a sqlite file path, ":memory:" included.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/fabienvalero1/userdir/internal/server/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Dialect reports the goose dialect for the given DSN.
func Dialect(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// Open connects to the store described by dsn and runs the embedded goose
// migrations against it.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	dialect := Dialect(dsn)

	driver := "sqlite"
	if dialect == "postgres" {
		driver = "pgx"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// every pooled connection gets its own ":memory:" database, so pin the
	// pool to one connection to keep the migrated schema visible
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the embedded migrations for the given dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	fsys, err := migrations.ForDialect(dialect)
	if err != nil {
		return fmt.Errorf("migrations fs error: %w", err)
	}

	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect error: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}
