package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/library"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "export ALBUM DIR",
		Short: "Copy an album's image files into a directory, numbered in album order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			paths, err := library.ExportAlbum(a, args[1])
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(out(cmd), p)
			}
			return nil
		},
	})
}
