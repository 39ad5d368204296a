// Package tactile runs external programs on behalf of spiker: git for
// new spike repositories and the skill registrar for skill installs.
package tactile

import (
	"strings"
	"time"
)

// Command is a program invocation.
type Command struct {
	// Binary is the executable to run, resolved through PATH.
	Binary string `json:"binary"`

	// Arguments are the command-line arguments.
	Arguments []string `json:"arguments"`

	// WorkingDirectory is the directory to execute in.
	// If empty, the current directory is used.
	WorkingDirectory string `json:"working_directory,omitempty"`

	// Environment holds extra KEY=VALUE pairs added to the inherited environment.
	Environment []string `json:"environment,omitempty"`

	// Timeout overrides the executor's default timeout when positive.
	Timeout time.Duration `json:"timeout,omitempty"`
}

// CommandString returns the command as a single shell-like line.
func (c Command) CommandString() string {
	if len(c.Arguments) == 0 {
		return c.Binary
	}
	return c.Binary + " " + strings.Join(c.Arguments, " ")
}

// ExecutionResult is the outcome of running a Command.
type ExecutionResult struct {
	// Success reports whether the program could be run at all.
	// A program that runs and exits non-zero still has Success=true.
	Success bool `json:"success"`

	// Error describes why the program could not be run when Success is false.
	Error string `json:"error,omitempty"`

	// ExitCode is the program's exit status, -1 if it never exited normally.
	ExitCode int `json:"exit_code"`

	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`

	// Truncated is set when output exceeded the executor's capture limit.
	Truncated bool `json:"truncated,omitempty"`

	// Killed is set when the program was stopped by timeout or cancellation.
	Killed     bool   `json:"killed,omitempty"`
	KillReason string `json:"kill_reason,omitempty"`

	Duration   time.Duration `json:"duration"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Succeeded reports whether the program ran and exited zero.
func (r *ExecutionResult) Succeeded() bool {
	return r.Success && !r.Killed && r.ExitCode == 0
}
