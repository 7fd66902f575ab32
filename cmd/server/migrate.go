package main

import (
	"skills-tracker-backend/internal/database/migrations"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) migrateCommand() *cobra.Command {
	var rollback bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := migrations.Open(a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if rollback {
				err = migrations.Down(cmd.Context(), db)
			} else {
				err = migrations.Up(cmd.Context(), db)
			}
			if err != nil {
				return err
			}

			version, err := migrations.Version(cmd.Context(), db)
			if err != nil {
				return err
			}
			logrus.WithField("version", version).Info("Migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&rollback, "rollback", "r", false, "roll back the latest migration")
	return cmd
}
