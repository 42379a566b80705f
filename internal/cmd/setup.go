package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/xdg/authsetup/internal/clog"
	"github.com/xdg/authsetup/internal/config"
	"github.com/xdg/authsetup/internal/envfile"
	"github.com/xdg/authsetup/internal/executor"
	"github.com/xdg/authsetup/internal/setup"
	"github.com/xdg/authsetup/internal/term"
	"github.com/xdg/authsetup/internal/version"
)

// setupExecutor runs the external tool.
// It can be overridden for testing.
var setupExecutor executor.Executor

// stdinIsTerminal reports whether stdin is attached to a terminal.
// It can be overridden for testing.
var stdinIsTerminal = func() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// getSetupExecutor returns the executor to use for the tool invocation.
func getSetupExecutor() executor.Executor {
	if setupExecutor != nil {
		return setupExecutor
	}
	return executor.NewShellExecutor()
}

func runSetup(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if err := clog.Configure(cfg.Log.File, f.debug); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	if f.debug {
		clog.Debug("authsetup %s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)
		if data, err := config.Marshal(cfg); err == nil {
			clog.Debug("effective config:\n%s", data)
		}
	}

	// Only worth warning about when the tool is actually going to prompt.
	if exists, _ := envfile.Exists(cfg.EnvFile); exists && !stdinIsTerminal() {
		term.Warn("stdin is not a terminal; %s may not be able to prompt for credentials", cfg.Tool)
	}

	opts := setup.Options{
		EnvFile:       cfg.EnvFile,
		DeploymentKey: cfg.DeploymentKey,
		Tool:          cfg.Tool,
		SkipGitCheck:  cfg.ShouldSkipGitCheck(),
		Once:          f.once,
		Debug:         f.debug,
		GOOS:          runtime.GOOS,
	}

	if _, err := setup.NewRunner(getSetupExecutor()).Run(cmd.Context(), opts); err != nil {
		return toolError(err, cfg.Tool)
	}
	return nil
}
