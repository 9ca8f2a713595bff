package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	tagTypesCmd := &cobra.Command{Use: "tag-types", Short: "Manage the tag-type registry"}

	tagTypesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List preset and custom tag types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			for _, t := range l.TagTypes().All() {
				fmt.Fprintln(out(cmd), t)
			}
			return nil
		},
	})

	tagTypesCmd.AddCommand(&cobra.Command{
		Use:   "add TYPE",
		Short: "Register a custom tag type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := openLibrary()
			if err != nil {
				return err
			}
			if !l.TagTypes().Add(args[0]) {
				fmt.Fprintf(out(cmd), "%q is blank or already known\n", args[0])
				return nil
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "added tag type %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(tagTypesCmd)
}
