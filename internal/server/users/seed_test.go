package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_FillsEmptyStore(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	inserted, err := Seed(ctx, conn, "sqlite3", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, inserted)

	r := NewSQLiteRepository(conn)
	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), n)

	rows, err := r.List(ctx, 100, 0)
	require.NoError(t, err)
	for _, u := range rows {
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
		assert.Contains(t, seedRoles, u.Role)
	}
}

func TestSeed_NonEmptyStoreUntouched(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(conn)
	insertUsers(t, r, 2)

	inserted, err := Seed(ctx, conn, "sqlite3", 25)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
