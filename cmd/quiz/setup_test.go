package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quizzer/internal/config"
	"github.com/sandevgo/quizzer/internal/storage/memory"
)

func TestInitEnv(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")

	// a missing file is not an error
	require.NoError(t, initEnv(ctx, envFile))

	require.NoError(t, os.WriteFile(envFile, []byte("QUIZ_SETUP_TEST=loaded\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("QUIZ_SETUP_TEST") })

	require.NoError(t, initEnv(ctx, envFile))
	assert.Equal(t, "loaded", os.Getenv("QUIZ_SETUP_TEST"))
}

func TestInitStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		db, repo, err := initStorage(ctx, &config.AppConfig{Storage: "memory"})
		require.NoError(t, err)
		assert.Nil(t, db)
		assert.IsType(t, &memory.QuizRepo{}, repo)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.AppConfig{
			RuntimePath:  t.TempDir(),
			Storage:      "sqlite",
			SQLiteDriver: "sqlite",
		}
		db, repo, err := initStorage(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		_, err = repo.Create(ctx, "Capital of Italy", "Rome")
		require.NoError(t, err)
		assert.FileExists(t, cfg.GetDatabasePath())
	})
}

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() { storageFlag, driverFlag = "", "" })

	cfg := &config.AppConfig{Storage: "sqlite", SQLiteDriver: "sqlite3"}
	applyFlags(cfg)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, "sqlite3", cfg.SQLiteDriver)

	storageFlag, driverFlag = "memory", "sqlite"
	applyFlags(cfg)
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, "sqlite", cfg.SQLiteDriver)
}
