package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn, err := DSN(DriverCGO, "/tmp/q.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "file:/tmp/q.db?")
	assert.Contains(t, dsn, "_busy_timeout=5000")

	dsn, err = DSN(DriverPure, "/tmp/q.db")
	require.NoError(t, err)
	assert.Contains(t, dsn, "_pragma=busy_timeout%285000%29")

	_, err = DSN("postgres", "/tmp/q.db")
	assert.Error(t, err)
}

func TestDrivers_OpenAndQuery(t *testing.T) {
	for _, driver := range []string{DriverCGO, DriverPure} {
		t.Run(driver, func(t *testing.T) {
			dsn, err := DSN(driver, filepath.Join(t.TempDir(), "test.db"))
			require.NoError(t, err)

			db, err := sql.Open(driver, dsn)
			require.NoError(t, err)
			defer db.Close()

			var one int
			require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
			assert.Equal(t, 1, one)
		})
	}
}

func TestIsBusy(t *testing.T) {
	assert.True(t, IsBusy(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.True(t, IsBusy(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, IsBusy(errors.New("no such table: quizzes")))
	assert.False(t, IsBusy(nil))
}
