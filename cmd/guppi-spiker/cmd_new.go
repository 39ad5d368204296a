package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"spiker/internal/spike"
)

func newNewCmd() *cobra.Command {
	var gitFlag, noGit bool

	cmd := &cobra.Command{
		Use:   "new [slug]",
		Short: "Create a new spike directory",
		Long: `Creates <root>/<today>-<slug> and prints its absolute path.

Without a slug, or with an empty one, a random adjective-color-animal
name is used. Creating a
spike that already exists is not an error. A git repository is
initialized unless --no-git is given or "git: false" is configured;
git failures are ignored.

Example:
  cd "$(guppi-spiker new redis-caching)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var slug string
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				slug = args[0]
				if err := validateSlug(slug); err != nil {
					return err
				}
			}

			git := cfg.Git
			if cmd.Flags().Changed("git") {
				git = gitFlag
			}
			if noGit {
				git = false
			}

			entry, err := openIndex().Create(cmd.Context(), spike.CreateOptions{Slug: slug, Git: git})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&gitFlag, "git", true, "Initialize a git repo")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "Do not initialize a git repo")
	cmd.MarkFlagsMutuallyExclusive("git", "no-git")
	return cmd
}

// validateSlug rejects slugs that would nest directories under the root.
func validateSlug(slug string) error {
	if strings.ContainsAny(slug, `/\`) || filepath.Base(slug) != slug {
		return fmt.Errorf("invalid slug %q: must not contain path separators", slug)
	}
	return nil
}
