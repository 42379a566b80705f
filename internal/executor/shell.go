package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Package runner executables.
const (
	RunnerUnix    = "npx"
	RunnerWindows = "npx.cmd"
)

// RunnerName returns the package runner executable for the given GOOS.
func RunnerName(goos string) string {
	if goos == "windows" {
		return RunnerWindows
	}
	return RunnerUnix
}

// BuildLine assembles the tool invocation:
//
//	<runner> <tool> --variables "<payload>" --skip-git-check
//
// escapedPayload must already be escaped for a double-quoted argument.
func BuildLine(runner, tool, escapedPayload string, skipGitCheck bool) string {
	var b strings.Builder
	b.WriteString(runner)
	b.WriteString(" ")
	b.WriteString(tool)
	b.WriteString(` --variables "`)
	b.WriteString(escapedPayload)
	b.WriteString(`"`)
	if skipGitCheck {
		b.WriteString(" --skip-git-check")
	}
	return b.String()
}

// ShellExecutor runs commands through /bin/sh (cmd.exe on Windows) with the
// given standard streams. Pass *os.File streams so the child sees a real
// terminal and can prompt.
type ShellExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellExecutor creates a ShellExecutor attached to the process's own
// stdin, stdout and stderr.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes cmd.Line and blocks until it exits.
// Returns a *CommandError if the shell cannot start or exits non-zero.
func (e *ShellExecutor) Run(ctx context.Context, cmd Command) error {
	c := shellCommand(ctx, cmd.Line)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr
	c.Env = mergeEnv(os.Environ(), cmd.Env)

	err := c.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &CommandError{Line: cmd.Line, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &CommandError{Line: cmd.Line, ExitCode: -1, Err: err}
}

// mergeEnv appends overrides to base in key order. Later entries win for
// os/exec, so overrides replace inherited values.
func mergeEnv(base []string, overrides map[string]string) []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+overrides[k])
	}
	return env
}
