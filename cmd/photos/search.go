package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstromberg/photoalbum/pkg/search"
)

func init() {
	var tag1, tag2, combinator, from, to, saveAs string

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Find the signed-in user's photos by tag and date",
		Long: "Matches up to two name=value tags joined by --op, within an inclusive date range. " +
			"The date range applies only when both --from and --to are given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := search.ParseQuery(tag1, tag2, combinator, from, to)
			if err != nil {
				return err
			}
			l, u, err := session()
			if err != nil {
				return err
			}

			results := search.Run(u, q)
			fmt.Fprintf(out(cmd), "%d photos match %s\n", len(results), q)
			printPhotos(out(cmd), results)

			if saveAs == "" {
				return nil
			}
			a, err := search.SaveAs(u, saveAs, results)
			if err != nil {
				return err
			}
			if err := l.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "saved results as %s\n", a)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&tag1, "tag", "", "first tag, as name=value")
	searchCmd.Flags().StringVar(&tag2, "tag2", "", "second tag, as name=value")
	searchCmd.Flags().StringVar(&combinator, "op", "none", "how to join the tags: none, and, or")
	searchCmd.Flags().StringVar(&from, "from", "", "first date to include, as YYYY-MM-DD")
	searchCmd.Flags().StringVar(&to, "to", "", "last date to include, as YYYY-MM-DD")
	searchCmd.Flags().StringVar(&saveAs, "save-as", "", "save the results as a new album")
	rootCmd.AddCommand(searchCmd)
}
