package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin-only platform views",
	}

	cmd.AddCommand(
		newAdminStatsCmd(app),
		newAdminUsersCmd(app),
	)

	return cmd
}

func newAdminStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate platform counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewAdmin); err != nil {
				return err
			}

			stats, err := app.client.Admin().Stats(cmd.Context())
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(stats))
			for key := range stats {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				fmt.Printf("%-16s %d\n", key, stats[key])
			}
			return nil
		},
	}
}

func newAdminUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every platform account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewAdmin); err != nil {
				return err
			}

			users, err := app.client.Admin().Users(cmd.Context())
			if err != nil {
				return err
			}

			for _, user := range users {
				fmt.Printf("%4d  %-10s  %s\n", user.ID, user.Role, user.Email)
			}
			return nil
		},
	}
}
