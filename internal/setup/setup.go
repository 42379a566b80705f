// Package setup runs the auth setup pipeline once: load the environment
// file, resolve the deployment name, build the help payload, run the
// external tool and, in run-once mode, mark the environment file.
package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/xdg/authsetup/internal/clog"
	"github.com/xdg/authsetup/internal/envfile"
	"github.com/xdg/authsetup/internal/executor"
	"github.com/xdg/authsetup/internal/payload"
	"github.com/xdg/authsetup/internal/term"
)

// Options configures a single run. All fields are explicit; nothing is
// read from package state.
type Options struct {
	EnvFile       string
	DeploymentKey string
	Tool          string
	SkipGitCheck  bool

	// Once appends the completion marker after the tool succeeds.
	Once bool

	// Debug dumps diagnostics through clog.
	Debug bool

	// GOOS selects the package runner executable.
	GOOS string
}

// Result describes what a run did.
type Result struct {
	Skipped       bool
	Deployment    string
	CommandLine   string
	MarkerWritten bool
}

// Runner executes the pipeline with the given Executor.
type Runner struct {
	Executor executor.Executor
}

// NewRunner creates a Runner that uses exec to invoke the tool.
func NewRunner(exec executor.Executor) *Runner {
	return &Runner{Executor: exec}
}

// Run performs the setup. A missing environment file is not an error: a
// notice is printed and Result.Skipped is set. The marker is only written
// when opts.Once is set and the tool exited successfully.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	exists, err := envfile.Exists(opts.EnvFile)
	if err != nil {
		return res, fmt.Errorf("check %s: %w", opts.EnvFile, err)
	}
	if !exists {
		term.Printf("Missing %s, skipping auth setup.\n", opts.EnvFile)
		clog.Info("env file %s not found, skipping", opts.EnvFile)
		res.Skipped = true
		return res, nil
	}

	env, err := envfile.Load(opts.EnvFile)
	if err != nil {
		return res, fmt.Errorf("load %s: %w", opts.EnvFile, err)
	}
	if opts.Debug {
		clog.Debug("loaded %s with keys: %s", opts.EnvFile, strings.Join(env.Keys(), ", "))
		if envfile.HasMarker(env) {
			clog.Debug("%s already set; running setup again", envfile.MarkerKey)
		}
	}

	res.Deployment = envfile.DeploymentName(env, opts.DeploymentKey)
	if opts.Debug {
		clog.Debug("deployment name: %s", res.Deployment)
	}

	encoded, err := payload.Encode(payload.Build(res.Deployment))
	if err != nil {
		return res, fmt.Errorf("build help payload: %w", err)
	}

	res.CommandLine = executor.BuildLine(executor.RunnerName(opts.GOOS), opts.Tool, encoded, opts.SkipGitCheck)
	if opts.Debug {
		clog.Debug("command: %s", res.CommandLine)
	}

	term.Printf("Running %s to configure auth for deployment %s\n", opts.Tool, res.Deployment)
	clog.Info("running %s", opts.Tool)

	cmd := executor.Command{
		Line: res.CommandLine,
		Env:  map[string]string{"FORCE_COLOR": "true"},
	}
	if err := r.Executor.Run(ctx, cmd); err != nil {
		return res, fmt.Errorf("run %s: %w", opts.Tool, err)
	}

	if opts.Once {
		if err := envfile.AppendMarker(opts.EnvFile); err != nil {
			return res, fmt.Errorf("mark setup complete: %w", err)
		}
		res.MarkerWritten = true
		clog.Info("appended %s to %s", envfile.MarkerLine, opts.EnvFile)
	}

	return res, nil
}
