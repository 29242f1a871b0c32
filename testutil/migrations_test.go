package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/migrations"
	"github.com/pkordes/fyyur/testutil"
)

var tables = []string{"venues", "artists", "shows"}

// TestMigrations applies every migration, checks the tables exist, rolls
// everything back and checks they are gone.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := migrations.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	// Another package's TestMain may already have migrated this shared DB.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, 3)
	for _, table := range tables {
		assert.True(t, tableExists(t, db, table), "expected table %q to exist", table)
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	for _, table := range tables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	// Leave the schema migrated for any package that runs after this one.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "goose up (restore)")
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)
	return exists
}
