package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "scoped tool", mutate: func(c *Config) { c.Tool = "@convex-dev/auth@0.0.80" }},
		{name: "empty env file", mutate: func(c *Config) { c.EnvFile = "" }, wantErr: "env_file"},
		{name: "env file newline", mutate: func(c *Config) { c.EnvFile = ".env\n.local" }, wantErr: "line breaks"},
		{name: "bad key", mutate: func(c *Config) { c.DeploymentKey = "1CONVEX" }, wantErr: "deployment_key"},
		{name: "key with dash", mutate: func(c *Config) { c.DeploymentKey = "CONVEX-DEPLOYMENT" }, wantErr: "deployment_key"},
		{name: "empty tool", mutate: func(c *Config) { c.Tool = "" }, wantErr: "tool: must not be empty"},
		{name: "tool with space", mutate: func(c *Config) { c.Tool = "a b" }, wantErr: "shell metacharacters"},
		{name: "tool with backtick", mutate: func(c *Config) { c.Tool = "a`id`" }, wantErr: "shell metacharacters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
