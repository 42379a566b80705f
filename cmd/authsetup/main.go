// Package main is the entry point for the authsetup CLI.
package main

import (
	"os"

	"github.com/xdg/authsetup/internal/clog"
	"github.com/xdg/authsetup/internal/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		clog.Error("auth setup failed: %v", err)
	}
	_ = clog.Close()
	if err != nil {
		os.Exit(1)
	}
}
