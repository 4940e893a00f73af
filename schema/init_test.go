package schema

import (
	"path/filepath"
	"testing"

	"airjustice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteCreatesTableIdempotently(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "nested", "aj.db")}

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, InitializeDatabase(db, config.DriverSQLite))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM air_complaints`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpen_RejectsMemoryDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: config.DriverMemory})
	require.Error(t, err)
}
