package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"spiker/internal/spike"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <query>",
		Short: "Print the path to the most recent matching spike",
		Long: `Prints exactly one path: the most recent spike whose slug contains the
query, ignoring case. Exits 1 with a message on stderr when nothing matches.

Example:
  cd "$(guppi-spiker path redis)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			entry, err := openIndex().Resolve(query)
			if errors.Is(err, spike.ErrNoMatch) {
				fmt.Fprintf(cmd.ErrOrStderr(), "No spikes matching '%s'.\n", query)
				return silentExit(1)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
			return nil
		},
	}
}
