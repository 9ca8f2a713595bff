package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "Administer user accounts"}

	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every user but admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			for _, name := range l.ListUsers() {
				fmt.Fprintln(out(cmd), name)
			}
			return nil
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create a user with no password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			u, err := l.CreateUser(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "created user %s\n", u.Name())
			return nil
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a user and all of its albums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			if err := l.DeleteUser(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "deleted user %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(usersCmd)
}
