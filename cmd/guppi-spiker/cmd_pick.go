package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"spiker/cmd/guppi-spiker/ui"
	"spiker/internal/logging"
	"spiker/internal/spike"
)

var (
	// interactive reports whether the picker can take over the terminal.
	interactive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
	}

	// runPicker drives the picker to completion. The UI is drawn on stderr
	// so stdout carries only the chosen path.
	runPicker = func(p ui.Picker) (ui.Picker, error) {
		final, err := tea.NewProgram(p, tea.WithAltScreen(), tea.WithOutput(os.Stderr)).Run()
		if err != nil {
			return p, err
		}
		picked, ok := final.(ui.Picker)
		if !ok {
			return p, errors.New("unexpected picker model")
		}
		return picked, nil
	}
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [query]",
		Short: "Choose a spike interactively and print its path",
		Long: `Opens a filterable list of spikes, optionally narrowed to slugs
containing the query. Enter prints the highlighted spike's path; Esc or q
cancels with exit status 1.

Example:
  cd "$(guppi-spiker pick)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix := openIndex()

			var entries []spike.Entry
			var err error
			if len(args) == 1 {
				entries, err = ix.Find(args[0])
			} else {
				entries, err = ix.List()
			}
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			if len(entries) == 0 {
				if len(args) == 1 {
					fmt.Fprintf(errOut, "No spikes matching '%s'.\n", args[0])
				} else {
					fmt.Fprintln(errOut, "No spikes found.")
				}
				return silentExit(1)
			}
			if !interactive() {
				return &exitError{code: 1, err: errors.New("pick needs an interactive terminal; use find or path instead")}
			}

			picked, err := runPicker(ui.NewPicker(entries))
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}
			entry, ok := picked.Choice()
			if !ok {
				logging.Get(logging.CategoryPicker).Debug("Pick cancelled")
				return silentExit(1)
			}
			logging.Get(logging.CategoryPicker).Debug("Picked spike", zap.String("path", entry.Path))
			fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
			return nil
		},
	}
}
