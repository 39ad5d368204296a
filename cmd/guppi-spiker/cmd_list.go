package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spiker/cmd/guppi-spiker/ui"
	"spiker/internal/spike"
)

func newListCmd() *cobra.Command {
	var long, jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all spikes, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := openIndex().List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if jsonOut {
				if entries == nil {
					entries = []spike.Entry{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No spikes found.")
				return nil
			}

			if long {
				return ui.WriteLong(out, entries, hasRepo)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", e.Date, e.Slug)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show paths and git status")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.MarkFlagsMutuallyExclusive("long", "json")
	return cmd
}

func hasRepo(e spike.Entry) bool {
	info, err := os.Stat(filepath.Join(e.Path, ".git"))
	return err == nil && info.IsDir()
}
