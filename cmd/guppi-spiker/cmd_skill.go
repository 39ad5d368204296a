package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spiker/internal/skills"
)

func newSkillCmd() *cobra.Command {
	skillCmd := &cobra.Command{
		Use:   "skill",
		Short: "Skill management commands",
	}
	skillCmd.AddCommand(newSkillInstallCmd(), newSkillShowCmd())
	return skillCmd
}

// loadSkill loads SKILL.md, reporting a missing document on stderr.
func loadSkill(cmd *cobra.Command) (*skills.Document, error) {
	doc, err := skills.Load(cfg.SkillMD)
	if errors.Is(err, skills.ErrNotFound) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: SKILL.md not found")
		return nil, silentExit(1)
	}
	return doc, err
}

// skillCacheDir is where the embedded SKILL.md is written for the registrar.
func skillCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "spiker", "skills")
}

func newSkillInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Register this skill with guppi",
		Long: `Runs "<registrar> skill install <path to SKILL.md>". The registrar's
output and exit status are passed through.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadSkill(cmd)
			if err != nil {
				return err
			}
			path, err := skills.Materialize(doc, skillCacheDir())
			if err != nil {
				return err
			}

			installer := &skills.Installer{Executor: newExecutor(), Registrar: cfg.Registrar}
			result, err := installer.Install(cmd.Context(), path)
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			switch {
			case !result.Success:
				fmt.Fprintf(errOut, "Error: %s\n", result.Error)
				return silentExit(1)
			case result.Killed:
				fmt.Fprintf(errOut, "Error: %s %s\n", cfg.Registrar, result.KillReason)
				return silentExit(1)
			case result.ExitCode != 0:
				fmt.Fprintf(errOut, "Error: %s\n", strings.TrimSpace(result.Stderr))
				return silentExit(result.ExitCode)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(result.Stdout))
			return nil
		},
	}
}

func newSkillShowCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display SKILL.md contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadSkill(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if render {
				rendered, err := skills.Render(doc, terminalWidth())
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
				return nil
			}

			text := string(doc.Raw)
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&render, "render", "r", false, "Render markdown for the terminal")
	return cmd
}

// terminalWidth returns the stdout width, or 80 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
