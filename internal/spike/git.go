package spike

import (
	"context"
	"fmt"
	"strings"

	"spiker/internal/tactile"
)

// GitInitializer runs "git init" through an executor.
type GitInitializer struct {
	Executor tactile.Executor
	Binary   string
}

// InitRepo implements RepoInitializer. Output of git is discarded; a
// non-zero exit is reported as an error.
func (g *GitInitializer) InitRepo(ctx context.Context, dir string) error {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	result, err := g.Executor.Execute(ctx, tactile.Command{
		Binary:           binary,
		Arguments:        []string{"init"},
		WorkingDirectory: dir,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%s could not be run: %s", binary, result.Error)
	}
	if result.Killed {
		return fmt.Errorf("%s init was stopped: %s", binary, result.KillReason)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s init exited with status %d: %s", binary, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}
