package tactile

import (
	"context"
)

// Executor is the interface for command execution.
type Executor interface {
	// Execute runs a command and returns its result. A returned error means
	// the command was rejected before it was started.
	Execute(ctx context.Context, cmd Command) (*ExecutionResult, error)
}
