package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/tstromberg/photoalbum/pkg/library"
	"github.com/tstromberg/photoalbum/pkg/photos"
)

func init() {
	photosCmd := &cobra.Command{Use: "photos", Short: "Manage the photos in an album"}

	photosCmd.AddCommand(&cobra.Command{
		Use:   "add ALBUM PATH...",
		Short: "Add image files to an album",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			added := 0
			for _, path := range args[1:] {
				p, err := u.Photo(path)
				if err != nil {
					return err
				}
				if !a.AddPhoto(p) {
					klog.Warningf("%s is already in %s", path, a.Name())
					continue
				}
				added++
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "added %d photos to %s\n", added, a.Name())
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "remove ALBUM PATH",
		Short: "Remove a photo from an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			a.RemovePhoto(p)
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "removed %s from %s\n", p.Path(), a.Name())
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "caption ALBUM PATH TEXT",
		Short: "Set a photo's caption",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			p.SetCaption(args[2])
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), p)
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "tag ALBUM PATH TYPE VALUE",
		Short: "Tag a photo; a new tag type is registered as a custom type",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			changed, err := p.AddTag(args[2], args[3])
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(out(cmd), "%s already tagged %s=%s\n", p.Path(), args[2], args[3])
				return nil
			}
			l.TagTypes().Add(args[2])
			if err := l.Save(); err != nil {
				return err
			}
			printPhotos(out(cmd), []*photos.Photo{p})
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "untag ALBUM PATH TYPE VALUE",
		Short: "Remove a tag from a photo",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			if !p.RemoveTag(args[2], args[3]) {
				return photos.Errorf(photos.KindNotFound, "%s has no tag %s=%s", p.Path(), args[2], args[3])
			}
			if err := l.Save(); err != nil {
				return err
			}
			printPhotos(out(cmd), []*photos.Photo{p})
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "copy FROM PATH TO",
		Short: "Add a photo to another album as well",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			ok, err := u.CopyPhoto(p, args[2])
			if err != nil {
				return err
			}
			if !ok {
				return photos.Errorf(photos.KindDuplicate, "%s is already in %q", p.Path(), args[2])
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "copied %s to %s\n", p.Path(), args[2])
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "move FROM PATH TO",
		Short: "Move a photo to another album",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			p, err := albumPhoto(a, args[1])
			if err != nil {
				return err
			}
			dst, err := u.Album(args[2])
			if err != nil {
				return err
			}
			if dst == a {
				return photos.Errorf(photos.KindInvalidArgument, "source and destination are the same album %q", a.Name())
			}
			ok, err := u.MovePhoto(p, args[0], args[2])
			if err != nil {
				return err
			}
			if !ok {
				return photos.Errorf(photos.KindDuplicate, "%s is already in %q", p.Path(), args[2])
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "moved %s to %s\n", p.Path(), args[2])
			return nil
		},
	})

	photosCmd.AddCommand(&cobra.Command{
		Use:   "import ALBUM DIR",
		Short: "Add every image in a directory to an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, u, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			n, err := library.ImportDir(u, a, args[1])
			if err != nil {
				return err
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "imported %d photos into %s\n", n, a.Name())
			return nil
		},
	})

	rootCmd.AddCommand(photosCmd)
}
