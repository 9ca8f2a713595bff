package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "login NAME",
		Short: "Sign in, creating the user on first use, and list its albums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if photos.IsAdmin(args[0]) {
				fmt.Fprintln(out(cmd), "signed in as admin: manage accounts with the users command")
				return nil
			}
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			u, err := l.Login(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "signed in as %s\n", u.Name())
			for _, a := range u.Albums() {
				fmt.Fprintln(out(cmd), albumLine(a))
			}
			return nil
		},
	})
}
