package main

import (
	"skills-tracker-backend/internal/seed"

	"github.com/spf13/cobra"
)

func (a *app) seedCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load skills and teams from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := seed.ReadFile(path)
			if err != nil {
				return err
			}
			db, err := a.openDB(false)
			if err != nil {
				return err
			}
			_, err = seed.NewLoader(db).Load(cmd.Context(), file)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "config/seed.yaml", "seed document to load")
	return cmd
}
