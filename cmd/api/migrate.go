package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "todolist/internal/adapter/db"
	"todolist/internal/config"
)

func newMigrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tasks and logs tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dbadapter.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			zap.L().Info("migration complete", zap.String("driver", cfg.DbDriver))
			return nil
		},
	}
}
