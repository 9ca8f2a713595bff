package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/autotag"
	"github.com/tstromberg/photoalbum/pkg/library"
	"github.com/tstromberg/photoalbum/pkg/photos"
)

func init() {
	var o autotag.Options

	autotagCmd := &cobra.Command{
		Use:   "autotag ALBUM",
		Short: "Tag an album's photos with Gemini suggestions",
		Long:  "Sends each photo to Gemini (PHOTOS_GEMINI_API_KEY, PHOTOS_GEMINI_MODEL) and adds the suggested values as tags of the given type.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, a, err := albumSession(args[0])
			if err != nil {
				return err
			}
			c, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			g, err := autotag.NewGemini(ctx, c.GeminiAPIKey, c.GeminiModel)
			if err != nil {
				return err
			}
			return runAutotag(ctx, out(cmd), l, a, g, o)
		},
	}
	autotagCmd.Flags().StringVar(&o.TagType, "type", "keyword", "tag type to store suggestions under")
	autotagCmd.Flags().IntVar(&o.Max, "max", 5, "most tags to add per photo")
	autotagCmd.Flags().BoolVar(&o.Overwrite, "overwrite", false, "replace existing tags of the type")
	autotagCmd.Flags().BoolVarP(&o.DryRun, "dry-run", "n", false, "log suggestions without tagging")
	rootCmd.AddCommand(autotagCmd)
}

func runAutotag(ctx context.Context, w io.Writer, l *library.Library, a *photos.Album, s autotag.Suggester, o autotag.Options) error {
	n, err := autotag.Apply(ctx, s, a, l.TagTypes(), o)
	if err != nil {
		return err
	}
	if !o.DryRun {
		if err := l.Save(); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "added %d %s tags to %s\n", n, o.TagType, a.Name())
	return nil
}
