package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/pkg/log"
	"github.com/sandevgo/quizzer/pkg/sqlite"
)

type AppConfig struct {
	RuntimePath string `env:"QUIZ_RUNTIME_PATH" envDefault:".quizzer"`

	// Storage backend: "sqlite" or "memory"
	Storage string `env:"QUIZ_STORAGE" envDefault:"sqlite"`
	// database/sql driver name: "sqlite3" (mattn, cgo) or "sqlite" (modernc)
	SQLiteDriver string `env:"QUIZ_SQLITE_DRIVER" envDefault:"sqlite3"`
	Seed         bool   `env:"QUIZ_SEED" envDefault:"true"`

	Prompt string `env:"QUIZ_PROMPT" envDefault:"quiz > "`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = ResolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "quizzes.db")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "history")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, LogFileName)
}

func (c AppConfig) GetStorage() string {
	return c.Storage
}

func (c AppConfig) GetSQLiteDriver() string {
	return c.SQLiteDriver
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) ShouldSeed() bool {
	return c.Seed
}

// Validate rejects unknown storage backends and drivers.
func (c AppConfig) Validate() error {
	switch c.Storage {
	case core.StorageMemory:
	case core.StorageSQLite:
		switch c.SQLiteDriver {
		case sqlite.DriverCGO, sqlite.DriverPure:
		default:
			return fmt.Errorf("unknown sqlite driver %q (want %q or %q)", c.SQLiteDriver, sqlite.DriverCGO, sqlite.DriverPure)
		}
	default:
		return fmt.Errorf("unknown storage %q (want %q or %q)", c.Storage, core.StorageSQLite, core.StorageMemory)
	}
	return nil
}

var _ core.AppConfig = AppConfig{}
