package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZ_RUNTIME_PATH", dir)

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, dir, cfg.GetRuntimePath())
	assert.Equal(t, "sqlite", cfg.GetStorage())
	assert.Equal(t, "sqlite3", cfg.GetSQLiteDriver())
	assert.True(t, cfg.ShouldSeed())
	assert.Equal(t, "quiz > ", cfg.GetPrompt())
	assert.Equal(t, filepath.Join(dir, "quizzes.db"), cfg.GetDatabasePath())
}

func TestNewAppConfig_Overrides(t *testing.T) {
	t.Setenv("QUIZ_RUNTIME_PATH", t.TempDir())
	t.Setenv("QUIZ_STORAGE", "memory")
	t.Setenv("QUIZ_SEED", "false")
	t.Setenv("QUIZ_SQLITE_DRIVER", "sqlite")

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, "memory", cfg.GetStorage())
	assert.Equal(t, "sqlite", cfg.GetSQLiteDriver())
	assert.False(t, cfg.ShouldSeed())
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"memory", AppConfig{Storage: "memory"}, false},
		{"sqlite cgo", AppConfig{Storage: "sqlite", SQLiteDriver: "sqlite3"}, false},
		{"sqlite pure", AppConfig{Storage: "sqlite", SQLiteDriver: "sqlite"}, false},
		{"unknown driver", AppConfig{Storage: "sqlite", SQLiteDriver: "postgres"}, true},
		{"unknown storage", AppConfig{Storage: "redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZ_RUNTIME_PATH", dir)
	assert.Equal(t, filepath.Join(dir, "quiz.log"), GetLogPath())
	assert.Equal(t, filepath.Join(dir, ".env"), GetEnvPath())
}

func TestResolveRuntimePath(t *testing.T) {
	assert.Equal(t, "/opt/quiz", ResolveRuntimePath("/opt/quiz"))
	assert.True(t, filepath.IsAbs(ResolveRuntimePath("relative")))
	assert.Equal(t, ".quizzer", filepath.Base(ResolveRuntimePath("")))
}
