// Package storage persists small client preferences (view state, theme) in a
// local sqlite file. Availability is probed once when the store is opened; if
// the probe fails, a disabled store is returned and every operation becomes a
// no-op. Callers never see a storage error; in-memory state stays
// authoritative for the session either way.
package storage

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

// Well-known preference keys.
const (
	// ViewStateKey holds the table view-state snapshot. Session-scoped:
	// the client clears it on logout.
	ViewStateKey = "table_view_state_v1"

	// ThemeKey holds the light/dark preference. Survives across sessions.
	ThemeKey = "app_theme_v1"
)

// Store is a best-effort key/value store. Get returns (nil, nil) for an
// absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Open opens (or creates) the preference store at dsn and probes it with one
// write/delete round-trip. On any failure it returns a disabled store and
// available=false.
func Open(ctx context.Context, dsn string) (store Store, available bool) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return Disabled{}, false
	}

	s := NewSQLiteStore(db)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS prefs (
		  key   TEXT PRIMARY KEY,
		  value BLOB NOT NULL
		)`); err != nil {
		_ = db.Close()
		return Disabled{}, false
	}

	const probeKey = "__storage_probe__"
	if err := s.Set(ctx, probeKey, []byte("probe")); err != nil {
		_ = db.Close()
		return Disabled{}, false
	}
	if err := s.Delete(ctx, probeKey); err != nil {
		_ = db.Close()
		return Disabled{}, false
	}

	return s, true
}

// Disabled is the store used when persistence is unavailable. All operations
// succeed without doing anything.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) ([]byte, error)   { return nil, nil }
func (Disabled) Set(ctx context.Context, key string, val []byte) error { return nil }
func (Disabled) Delete(ctx context.Context, key string) error          { return nil }
func (Disabled) Clear(ctx context.Context) error                       { return nil }
