package skills

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"spiker/internal/logging"
	"spiker/internal/tactile"
)

// Materialize returns a filesystem path holding the document. Documents
// read from disk are used in place; the embedded copy is written to
// dir/<name>/SKILL.md.
func Materialize(doc *Document, dir string) (string, error) {
	if doc.Path != "" {
		return filepath.Abs(doc.Path)
	}
	name := doc.Name
	if name == "" {
		name = "spiker"
	}
	target := filepath.Join(dir, name, FileName)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(target, doc.Raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write skill document: %w", err)
	}
	return filepath.Abs(target)
}

// Installer registers skill documents through the registrar executable,
// invoked as "<registrar> skill install <path>".
type Installer struct {
	Executor  tactile.Executor
	Registrar string
}

// Install runs the registrar. The result carries the registrar's output
// and exit status unchanged; callers decide how to surface them.
func (i *Installer) Install(ctx context.Context, path string) (*tactile.ExecutionResult, error) {
	logger := logging.Get(logging.CategorySkill)
	cmd := tactile.Command{
		Binary:    i.Registrar,
		Arguments: []string{"skill", "install", path},
	}
	logger.Debug("Registering skill", zap.String("command", cmd.CommandString()))

	result, err := i.Executor.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", i.Registrar, err)
	}
	logger.Debug("Registrar finished", zap.Int("exit_code", result.ExitCode), zap.Bool("ran", result.Success))
	return result, nil
}
