package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todolist/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	// Filled once the logger is installed so config warnings are not lost.
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "todolist",
		Short:        "Task management API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper()
			if err := setupLogger(v.GetString(config.KeyLogLevel)); err != nil {
				return err
			}
			*cfg = *config.FromViper(v)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync fails on stdout/stderr on some platforms.
			_ = zap.L().Sync()
		},
	}

	rootCmd.AddCommand(
		newServeCommand(cfg),
		newMigrateCommand(cfg),
	)

	return rootCmd
}

func setupLogger(level string) error {
	zapConfig := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	return nil
}
