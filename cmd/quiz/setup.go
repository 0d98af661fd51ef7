package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/quizzer/internal/config"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/command"
	"github.com/sandevgo/quizzer/internal/service/game"
	"github.com/sandevgo/quizzer/internal/storage"
	"github.com/sandevgo/quizzer/internal/storage/memory"
	"github.com/sandevgo/quizzer/internal/storage/sqlite"
	"github.com/sandevgo/quizzer/internal/transport/cli"
	"github.com/sandevgo/quizzer/pkg/log"
	"github.com/sandevgo/quizzer/pkg/srv"
)

func NewServices(ctx context.Context) ([]srv.Service, error) {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetEnvPath()); err != nil {
		return nil, err
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	applyFlags(appCfg)
	if err := appCfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug().
		Str("storage", appCfg.GetStorage()).
		Str("driver", appCfg.GetSQLiteDriver()).
		Str("runtime", appCfg.GetRuntimePath()).
		Msg("configuration loaded")

	// 2. Storage
	db, repo, err := initStorage(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	if db != nil {
		services = append(services, srv.NewCleanup(db.Close))
	}

	if appCfg.ShouldSeed() {
		err = storage.Seed(ctx, repo)
	}

	// 3. Terminal
	var term *cli.Terminal
	if err == nil {
		term, err = cli.NewTerminal(appCfg)
	}
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	// 4. Commands
	engine := game.NewEngine(repo, term, term)
	router := command.New(term, command.NewCommands(repo, term, term, engine))

	// 5. REPL
	services = append(services, cli.NewReadLine(term, router))

	return services, nil
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.QuizRepository, error) {
	if cfg.GetStorage() == core.StorageMemory {
		log.FromCtx(ctx).Info().Msg("using in-memory storage")
		return nil, memory.NewQuizRepo(), nil
	}

	db, err := sqlite.NewDB(ctx, cfg.GetSQLiteDriver(), cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewQuizRepo(db), nil
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
