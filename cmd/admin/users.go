package main

import (
	"io"
	"time"

	"project-admin/internal/database"
	"project-admin/internal/model"
	"project-admin/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listUsers = store.ListUsers

func newUsersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), opts, func(db database.DB) error {
				users, err := listUsers(cmd.Context(), db)
				if err != nil {
					return err
				}
				renderUsers(cmd.OutOrStdout(), users)
				return nil
			})
		},
	}
	cmd.AddCommand(list)
	return cmd
}

func renderUsers(w io.Writer, users []model.User) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Username", "Email", "Role", "Created", "Last Login"})
	for _, u := range users {
		lastLogin := "-"
		if u.LastLoginAt != nil {
			lastLogin = u.LastLoginAt.UTC().Format(time.RFC3339)
		}
		t.AppendRow(table.Row{u.ID, u.Username, u.Email, string(u.Role), u.CreatedAt.UTC().Format(time.RFC3339), lastLogin})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(users)})
	t.Render()
}
