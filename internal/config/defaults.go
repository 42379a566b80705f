package config

// Default settings, matching the project template this tool ships with.
const (
	DefaultPath          = ".authsetup.yaml"
	DefaultEnvFile       = ".env.local"
	DefaultDeploymentKey = "CONVEX_DEPLOYMENT"
	DefaultTool          = "@convex-dev/auth"
)

func boolPtr(b bool) *bool {
	return &b
}

// DefaultConfig returns a Config with all defaults populated.
func DefaultConfig() *Config {
	return &Config{
		EnvFile:       DefaultEnvFile,
		DeploymentKey: DefaultDeploymentKey,
		Tool:          DefaultTool,
		SkipGitCheck:  boolPtr(true),
	}
}

// applyDefaults fills every unset field of cfg from DefaultConfig.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.EnvFile == "" {
		cfg.EnvFile = def.EnvFile
	}
	if cfg.DeploymentKey == "" {
		cfg.DeploymentKey = def.DeploymentKey
	}
	if cfg.Tool == "" {
		cfg.Tool = def.Tool
	}
	if cfg.SkipGitCheck == nil {
		cfg.SkipGitCheck = def.SkipGitCheck
	}
}
