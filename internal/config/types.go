// Package config provides the optional authsetup settings file.
// The file is YAML and lives at .authsetup.yaml in the working directory
// unless another path is given with --config.
package config

// Config holds the settings for one authsetup run.
type Config struct {
	// EnvFile is the environment file read at startup and marked on --once.
	EnvFile string `yaml:"env_file,omitempty"`

	// DeploymentKey is the env file key holding "prefix:name".
	DeploymentKey string `yaml:"deployment_key,omitempty"`

	// Tool is the package the runner executes.
	Tool string `yaml:"tool,omitempty"`

	// SkipGitCheck passes --skip-git-check to the tool. Nil means true.
	SkipGitCheck *bool `yaml:"skip_git_check,omitempty"`

	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File receives operational logs. Empty disables file logging.
	File string `yaml:"file,omitempty"`
}

// ShouldSkipGitCheck reports whether --skip-git-check is passed to the tool.
func (c *Config) ShouldSkipGitCheck() bool {
	if c.SkipGitCheck == nil {
		return true
	}
	return *c.SkipGitCheck
}
