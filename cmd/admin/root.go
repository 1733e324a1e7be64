package main

import (
	"context"
	"errors"

	"project-admin/internal/config"
	"project-admin/internal/database"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	lookuper        = envconfig.OsLookuper()
)

type cliEnv struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Bootstrap   config.BootstrapConfig
}

type rootOptions struct {
	databaseURL string
	env         cliEnv
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "project-admin",
		Short:         "Project Admin maintenance CLI",
		Long:          "Command line tools for database migrations, admin provisioning and user inspection.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := envconfig.ProcessWith(cmd.Context(), &envconfig.Config{Target: &opts.env, Lookuper: lookuper}); err != nil {
				return err
			}
			if opts.databaseURL == "" {
				opts.databaseURL = opts.env.DatabaseURL
			}
			if opts.databaseURL == "" {
				return errors.New("DATABASE_URL 未設定，請使用 --database-url 或環境變數")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "Postgres connection string (default $DATABASE_URL)")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSeedAdminCmd(opts),
		newUsersCmd(opts),
	)
	return cmd
}

// withDB 開啟連線池並在 fn 結束後關閉
func withDB(ctx context.Context, opts *rootOptions, fn func(database.DB) error) error {
	db, err := newPgxPool(ctx, opts.databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
