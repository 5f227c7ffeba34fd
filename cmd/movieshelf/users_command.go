package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"movieshelf/internal/library"
)

func newUsersCommand(ctx *commandContext) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage collection owners",
	}

	usersCmd.AddCommand(newUsersListCommand(ctx))
	usersCmd.AddCommand(newUsersCreateCommand(ctx))

	return usersCmd
}

func newUsersListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				users, err := store.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				if len(users) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No users yet. Create one with 'movieshelf users create <name>'.")
					return nil
				}
				rows := make([][]string, 0, len(users))
				for _, user := range users {
					rows = append(rows, []string{strconv.FormatInt(user.ID, 10), user.Name})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name"}, rows, 0))
				return nil
			})
		},
	}
}

func newUsersCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := store.CreateUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				ctx.log().Info("user created", "user", user.Name, "user_id", user.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %q\n", user.Name)
				return nil
			})
		},
	}
}
