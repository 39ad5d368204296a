package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spiker/internal/spike"
)

func newFindCmd() *cobra.Command {
	var glob bool

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search spikes by substring match",
		Long: `Prints the path of every spike whose slug contains the query,
ignoring case, most recent first. Exits 1 when nothing matches.

With --glob the query is a glob pattern matched against the whole slug.

Examples:
  guppi-spiker find redis
  guppi-spiker find --glob 'redis-*'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			ix := openIndex()

			var matches []spike.Entry
			var err error
			if glob {
				matches, err = ix.FindGlob(query)
			} else {
				matches, err = ix.Find(query)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No spikes matching '%s'.\n", query)
				return silentExit(1)
			}
			for _, e := range matches {
				fmt.Fprintln(out, e.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&glob, "glob", "g", false, "Treat the query as a glob pattern")
	return cmd
}
