// Command guppi-spiker manages dated spike directories.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spiker/internal/config"
	"spiker/internal/logging"
	"spiker/internal/spike"
	"spiker/internal/tactile"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	// Version is set via ldflags at build time
	Version = "dev"
)

// exitError carries a process exit code through cobra. A nil err means
// the command already printed its own diagnostic.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// silentExit ends the command with code and no further output.
func silentExit(code int) error {
	return &exitError{code: code}
}

// newRootCmd creates the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "guppi-spiker",
		Short:   "Manage experimental spike projects in a centralized, searchable location",
		Version: Version,
		Long: `guppi-spiker keeps throwaway experiment directories under one root,
named YYYY-MM-DD-<slug>, and finds them again by slug.

The root is $SPIKER_PATH, else "root" from the config file, else ~/src/spikes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $SPIKER_CONFIG or <user config dir>/spiker/config.yaml)")

	rootCmd.AddCommand(
		newNewCmd(),
		newListCmd(),
		newFindCmd(),
		newPathCmd(),
		newPickCmd(),
		newSkillCmd(),
	)

	return rootCmd
}

// setup loads configuration and initializes logging.
func setup() error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger, err = logging.Initialize(logging.Options{
		Level:      cfg.Logging.Level,
		Verbose:    verbose,
		JSON:       cfg.Logging.IsJSON(),
		Categories: cfg.Logging.Categories,
	})
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryBoot).Debug("Configuration loaded",
		zap.String("config", path),
		zap.String("root", cfg.Root),
		zap.Bool("git", cfg.Git))
	return nil
}

func newExecutor() tactile.Executor {
	return tactile.NewDirectExecutorWithConfig(tactile.ExecutorConfig{
		DefaultTimeout: cfg.GetExecTimeout(),
	})
}

func openIndex() *spike.Index {
	return spike.NewIndex(cfg.Root,
		spike.WithRepoInitializer(&spike.GitInitializer{
			Executor: newExecutor(),
			Binary:   cfg.GitBinary,
		}),
	)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", exitErr.err)
		}
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
