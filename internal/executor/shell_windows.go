//go:build windows

package executor

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

// shellCommand hands the line to cmd.exe untouched. os/exec would otherwise
// re-quote the argument and break the embedded \" escapes.
func shellCommand(ctx context.Context, line string) *exec.Cmd {
	comspec := os.Getenv("ComSpec")
	if comspec == "" {
		comspec = "cmd.exe"
	}
	c := exec.CommandContext(ctx, comspec)
	c.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: comspec + ` /d /s /c "` + line + `"`,
	}
	return c
}
