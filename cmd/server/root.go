package main

import (
	"skills-tracker-backend/internal/config"
	"skills-tracker-backend/internal/database"
	"skills-tracker-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// app carries what every subcommand needs once the root pre-run has finished
type app struct {
	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "skills-tracker",
		Short:         "Skills Tracker backend",
		Long:          `Tracks skills, their prerequisites and the teams that know them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file in development
			if err := godotenv.Load(); err != nil {
				logrus.Debug("No .env file found, using system environment variables")
			}

			cfg, err := config.Load()
			if err != nil {
				logrus.WithError(err).Error("Failed to load configuration")
				return err
			}
			logger.Setup(cfg.LogLevel, cfg.Environment)
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(
		a.serveCommand(),
		a.migrateCommand(),
		a.grantCommand(),
		a.seedCommand(),
	)
	return root
}

// openDB connects to Postgres with the pool settings from the configuration
func (a *app) openDB(autoMigrate bool) (*gorm.DB, error) {
	opts := &database.Options{
		MaxOpenConns:    a.cfg.DatabaseMaxConns,
		MaxIdleConns:    a.cfg.DatabaseIdleConns,
		SkipAutoMigrate: !autoMigrate,
	}
	if a.cfg.IsDevelopment() {
		opts.LogLevel = gormlogger.Info
	}
	return database.Initialize(a.cfg.DatabaseURL, opts)
}
