// Package migrations embeds the goose SQL migrations for the record store.
// The schema is kept per dialect because sqlite and postgres disagree on
// auto-increment syntax.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// ForDialect returns the migration filesystem for the given goose dialect
// ("sqlite3" or "postgres").
func ForDialect(dialect string) (fs.FS, error) {
	dir := "sqlite"
	if dialect == "postgres" {
		dir = "postgres"
	}
	return fs.Sub(files, dir)
}
