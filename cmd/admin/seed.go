package main

import (
	"fmt"

	"project-admin/internal/database"
	"project-admin/internal/service"

	"github.com/spf13/cobra"
)

var bootstrapAdmin = service.BootstrapAdmin

func newSeedAdminCmd(opts *rootOptions) *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the admin account, or promote an existing user to admin",
		Long: `Ensures an admin account exists. Running it again with the same username
is safe: an existing user is promoted to admin and its password replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := opts.env.Bootstrap
			username = firstNonEmpty(username, b.Username)
			email = firstNonEmpty(email, b.Email)
			password = firstNonEmpty(password, b.Password)
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required (or BOOTSTRAP_ADMIN_USERNAME / BOOTSTRAP_ADMIN_PASSWORD)")
			}
			return withDB(cmd.Context(), opts, func(db database.DB) error {
				user, created, err := bootstrapAdmin(cmd.Context(), db, username, email, password)
				if err != nil {
					return fmt.Errorf("seed admin: %w", err)
				}
				verb := "updated"
				if created {
					verb = "created"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q %s (id %d)\n", user.Username, verb, user.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username (default $BOOTSTRAP_ADMIN_USERNAME)")
	cmd.Flags().StringVar(&email, "email", "", "admin email (default $BOOTSTRAP_ADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (default $BOOTSTRAP_ADMIN_PASSWORD)")
	return cmd
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
