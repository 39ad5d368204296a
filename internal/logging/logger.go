// Package logging provides categorized zap loggers for spiker.
// Logs go to stderr so they never mix with command output on stdout.
// Until Initialize is called every category logs to a no-op logger.
package logging

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryIndex  Category = "index"  // Spike root enumeration and creation
	CategorySkill  Category = "skill"  // SKILL.md lookup and registration
	CategoryExec   Category = "exec"   // External command execution
	CategoryPicker Category = "picker" // Interactive chooser
)

// Options configures Initialize.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string
	// Verbose forces debug level.
	Verbose bool
	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool
	// Categories toggles individual categories. Missing entries are enabled.
	Categories map[string]bool
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

var (
	mu           sync.RWMutex
	base         = zap.NewNop()
	categories   map[string]bool
	invocationID = uuid.NewString()
)

// Initialize builds the process logger. Every record carries the
// invocation ID so lines from one run can be grouped.
func Initialize(opts Options) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	if !opts.JSON {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = !opts.Verbose
	config.InitialFields = map[string]interface{}{"invocation": invocationID}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	mu.Lock()
	base = logger
	categories = opts.Categories
	mu.Unlock()
	return logger, nil
}

// Set replaces the process logger. Tests use it with zaptest/observer.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	base = logger
	categories = nil
	mu.Unlock()
}

// IsCategoryEnabled returns whether a specific category is enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	enabled, exists := categories[string(category)]
	return !exists || enabled
}

// Get returns the logger for a category, or a no-op logger when the
// category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(string(category))
}

// InvocationID returns the ID attached to every record of this process.
func InvocationID() string {
	return invocationID
}

// Sync flushes the process logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}
