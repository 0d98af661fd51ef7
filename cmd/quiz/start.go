package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/quizzer/internal/config"
	"github.com/sandevgo/quizzer/pkg/log"
	"github.com/sandevgo/quizzer/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the quiz console",
	Long:  `Opens the storage, seeds it when empty and starts the interactive console.`,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// Console output belongs to the REPL; the log goes to a file.
	logOut := log.OpenFile(config.GetLogPath())
	defer logOut.Close()

	var flushLog func()
	ctx, flushLog = setupLogger(ctx, logOut)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Info().Msg("starting quizzer")

	services, err := NewServices(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize services")
		return err
	}

	srv.StartServices(ctx, stop, services)

	// Wait for the REPL to close or a shutdown signal
	srv.ShutdownServices(ctx, services)
	logger.Info().Msg("quizzer has been shut down gracefully")

	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)
}
