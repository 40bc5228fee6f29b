package theme

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabienvalero1/userdir/internal/client/storage"
)

func openStore(t *testing.T) storage.Store {
	t.Helper()
	s, available := storage.Open(context.Background(), filepath.Join(t.TempDir(), "prefs.db"))
	require.True(t, available)
	return s
}

func TestNewManager_DefaultsToLight(t *testing.T) {
	m := NewManager(context.Background(), openStore(t))
	assert.Equal(t, Light, m.Current())
}

func TestToggle_PersistsAcrossManagers(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	m := NewManager(ctx, store)
	assert.Equal(t, Dark, m.Toggle(ctx))

	reloaded := NewManager(ctx, store)
	assert.Equal(t, Dark, reloaded.Current())
}

func TestSet_IgnoresUnknownValues(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, openStore(t))

	m.Set(ctx, Theme("sepia"))
	assert.Equal(t, Light, m.Current())
}

func TestNewManager_IgnoresCorruptStoredValue(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, store.Set(ctx, storage.ThemeKey, []byte("???")))

	m := NewManager(ctx, store)
	assert.Equal(t, Light, m.Current())
}

func TestManager_WorksWithDisabledStore(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, storage.Disabled{})

	assert.Equal(t, Dark, m.Toggle(ctx))
	assert.Equal(t, Light, m.Toggle(ctx))
}
