package main

import (
	"context"
	"io"
	"os"

	"github.com/sandevgo/quizzer/internal/config"
	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/ui"
	"github.com/sandevgo/quizzer/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	storageFlag string
	driverFlag  string
)

var rootCmd = &cobra.Command{
	Use:     "quiz",
	Short:   "Quizzer - a question and answer trainer",
	Long:    `Quizzer keeps a collection of questions and answers and quizzes you on them.`,
	Version: core.AppVersion,
	// Running without a subcommand opens the REPL.
	RunE:         runStart,
	SilenceUsage: true,
}

func Execute() {
	CustomizeHelp(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", `quiz storage: "sqlite" or "memory" (overrides QUIZ_STORAGE)`)
	rootCmd.PersistentFlags().StringVar(&driverFlag, "db-driver", "", `sqlite driver: "sqlite3" or "sqlite" (overrides QUIZ_SQLITE_DRIVER)`)
}

func setupLogger(ctx context.Context, out io.Writer) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug, out)
}

// applyFlags lets command line flags win over the environment.
func applyFlags(cfg *config.AppConfig) {
	if storageFlag != "" {
		cfg.Storage = storageFlag
	}
	if driverFlag != "" {
		cfg.SQLiteDriver = driverFlag
	}
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{.UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
