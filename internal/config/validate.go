package config

import (
	"fmt"
	"regexp"
	"strings"
)

// envKeyPattern matches a portable environment variable name.
var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a Config after defaults have been applied:
//   - env_file is non-empty and has no line breaks
//   - deployment_key is a valid environment variable name
//   - tool is non-empty and has no whitespace or shell quoting characters,
//     since it is placed unquoted on the command line
func Validate(cfg *Config) error {
	if cfg.EnvFile == "" {
		return fmt.Errorf("env_file: must not be empty")
	}
	if strings.ContainsAny(cfg.EnvFile, "\r\n") {
		return fmt.Errorf("env_file: must not contain line breaks")
	}
	if !envKeyPattern.MatchString(cfg.DeploymentKey) {
		return fmt.Errorf("deployment_key: %q is not a valid environment variable name", cfg.DeploymentKey)
	}
	if cfg.Tool == "" {
		return fmt.Errorf("tool: must not be empty")
	}
	if strings.ContainsAny(cfg.Tool, " \t\r\n\"'`$;&|<>") {
		return fmt.Errorf("tool: %q contains whitespace or shell metacharacters", cfg.Tool)
	}
	return nil
}
