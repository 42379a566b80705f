package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/authsetup/internal/executor"
)

// Shell exit status when the command is not found.
const exitCommandNotFound = 127

// toolError adds a hint when the package runner could not be started.
// Other errors are returned unchanged.
func toolError(err error, tool string) error {
	var cmdErr *executor.CommandError
	if !errors.As(err, &cmdErr) {
		return err
	}
	if cmdErr.ExitCode == exitCommandNotFound || cmdErr.ExitCode < 0 {
		return fmt.Errorf("could not run %s; make sure Node.js and npx are installed and on PATH: %w", tool, err)
	}
	return err
}
