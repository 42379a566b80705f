// Package executor runs the external setup tool through the system shell,
// attached to the caller's terminal.
package executor

import (
	"context"
	"fmt"
)

// Executor runs one shell command line to completion.
type Executor interface {
	Run(ctx context.Context, cmd Command) error
}

// Command is a shell command line plus environment overrides.
type Command struct {
	// Line is passed verbatim to the shell.
	Line string
	// Env is merged over the parent environment.
	Env map[string]string
}

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Line     string
	ExitCode int // -1 when the command never ran to completion
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d", e.Line, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", e.Line, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// MockExecutor implements Executor for testing. It records every command
// and returns Err (or the result of Fn when set).
type MockExecutor struct {
	Err   error
	Fn    func(Command) error
	Calls []Command
}

// Run records cmd and returns the configured result.
func (m *MockExecutor) Run(_ context.Context, cmd Command) error {
	m.Calls = append(m.Calls, cmd)
	if m.Fn != nil {
		return m.Fn(cmd)
	}
	return m.Err
}
