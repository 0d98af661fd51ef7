package main

import (
	"fmt"

	"github.com/sandevgo/quizzer/internal/config"
	"github.com/sandevgo/quizzer/internal/service/installer"
	"github.com/sandevgo/quizzer/pkg/log"
	"github.com/spf13/cobra"
)

var force bool

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Choose storage and console settings",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logOut := log.OpenFile(config.GetLogPath())
		defer logOut.Close()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, logOut)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup wizard")

		envPath := config.GetEnvPath()
		state, err := installer.RunWizard(envPath, force)
		if err != nil {
			return err
		}

		logger.Info().
			Str("path", envPath).
			Str("storage", state.Settings.Storage).
			Msg("configuration saved")
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s. Run 'quiz' to start.\n", envPath)
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing .env file")
	rootCmd.AddCommand(setupCmd)
}
