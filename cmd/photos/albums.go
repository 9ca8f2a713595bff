package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/photos"
)

// albumLine summarizes an album with the span of its capture dates.
func albumLine(a *photos.Album) string {
	start, end := a.DateRange()
	if start.IsZero() {
		return a.String()
	}
	return fmt.Sprintf("%s\t%s - %s", a, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func init() {
	albumsCmd := &cobra.Command{Use: "albums", Short: "Manage the signed-in user's albums"}

	albumsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List albums in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, u, err := session()
			if err != nil {
				return err
			}
			for _, a := range u.Albums() {
				fmt.Fprintln(out(cmd), albumLine(a))
			}
			return nil
		},
	})

	albumsCmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, err := session()
			if err != nil {
				return err
			}
			a, err := u.CreateAlbum(args[0])
			if err != nil {
				return err
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "created album %s\n", a.Name())
			return nil
		},
	})

	albumsCmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, err := session()
			if err != nil {
				return err
			}
			if !u.RemoveAlbum(args[0]) {
				return photos.Errorf(photos.KindNotFound, "album %q not found", args[0])
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "deleted album %s\n", args[0])
			return nil
		},
	})

	albumsCmd.AddCommand(&cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename an album, keeping its photos",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, err := session()
			if err != nil {
				return err
			}
			if _, err := u.Album(args[0]); err != nil {
				return err
			}
			if !u.RenameAlbum(args[0], args[1]) {
				return photos.Errorf(photos.KindInvalidArgument, "cannot rename %q to %q: name is blank or taken", args[0], args[1])
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "renamed album %s to %s\n", args[0], args[1])
			return nil
		},
	})

	albumsCmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "List an album's photos with their tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), albumLine(a))
			printPhotos(out(cmd), a.Photos())
			return nil
		},
	})

	rootCmd.AddCommand(albumsCmd)
}
