package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/library"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate-stock",
		Short: "Write a fresh library holding only the stock user",
		Long:  "Scans the data directory for images and overwrites the library file with a single stock user whose stock album holds them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			l := library.New(c)
			u, err := l.SeedStock(c.DataDir)
			if err != nil {
				return err
			}
			if err := l.Save(); err != nil {
				return err
			}
			a, err := u.Album(library.StockName)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "wrote %d stock photos to %s\n", a.PhotoCount(), l.Path())
			return nil
		},
	})
}
