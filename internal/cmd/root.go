// Package cmd implements the authsetup command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/authsetup/internal/config"
	"github.com/xdg/authsetup/internal/version"
)

// flags holds the run-scoped command line settings.
type flags struct {
	once       bool
	debug      bool
	configPath string
}

// NewRootCmd builds the authsetup command with fresh flag state.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "authsetup [--once]",
		Short: "Configure sign-in provider credentials for a Convex deployment",
		Long: `authsetup configures the GitHub OAuth and Resend credentials used by
Convex Auth. It reads the deployment name from .env.local, then runs
"npx @convex-dev/auth" interactively so you can enter each value.

If .env.local does not exist yet, authsetup prints a notice and exits
successfully without doing anything.

With --once, "SETUP_SCRIPT_RAN=1" is appended to .env.local after the
tool succeeds, so project scripts can skip setup on later runs.`,
		Version: version.Version,

		// Any other arguments are accepted and ignored.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, f)
		},
	}

	cmd.Flags().BoolVar(&f.once, "once", false, "append SETUP_SCRIPT_RAN=1 to the env file after a successful setup")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "print diagnostic output")
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultPath, "settings file (ignored if the default is absent)")

	return cmd
}

// Execute runs the root command and returns any error.
func Execute() error {
	return NewRootCmd().Execute()
}
