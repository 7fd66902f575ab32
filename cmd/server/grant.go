package main

import (
	"fmt"
	"strings"

	"skills-tracker-backend/internal/database/models"
	"skills-tracker-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// grantCommand bootstraps global permissions without going through the API,
// which is the only way to create the first ADMIN
func (a *app) grantCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "grant <username> <PERMISSION>...",
		Short:   "Grant global permissions to a registered user",
		Example: "  skills-tracker grant alice ADMIN",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			permissions, err := parsePermissions(args[1:])
			if err != nil {
				return err
			}

			db, err := a.openDB(false)
			if err != nil {
				return err
			}
			users := repository.NewUserRepository(db)
			held, err := users.GetUserGlobalPermissions(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load user %s: %w", args[0], err)
			}

			var missing []models.GlobalPermission
			for _, p := range permissions {
				if !held.Has(p) {
					missing = append(missing, p)
					held[p] = struct{}{}
				}
			}
			if len(missing) > 0 {
				if err := users.AddGlobalPermissions(cmd.Context(), args[0], missing); err != nil {
					return fmt.Errorf("failed to grant permissions to %s: %w", args[0], err)
				}
			}

			logrus.WithFields(logrus.Fields{
				"user":        args[0],
				"permissions": strings.Join(held.Strings(), ","),
			}).Info("Permissions granted")
			return nil
		},
	}
}

func parsePermissions(args []string) ([]models.GlobalPermission, error) {
	permissions := make([]models.GlobalPermission, 0, len(args))
	for _, arg := range args {
		permission, err := models.ParseGlobalPermission(arg)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, permission)
	}
	return permissions, nil
}
