package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_MissingOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := Load(path, true)
	if err == nil {
		t.Fatal("Load() should fail when an explicit config file is missing")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
env_file: .env.development
log:
  file: /tmp/authsetup.log
`)

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultConfig()
	want.EnvFile = ".env.development"
	want.Log.File = "/tmp/authsetup.log"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SkipGitCheckFalse(t *testing.T) {
	path := writeConfig(t, "skip_git_check: false\n")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ShouldSkipGitCheck() {
		t.Error("ShouldSkipGitCheck() = true, want false")
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, "env_fiel: .env\n")

	_, err := Load(path, true)
	if err == nil {
		t.Fatal("Load() should reject unknown fields")
	}
	if !strings.Contains(err.Error(), "env_fiel") {
		t.Errorf("error should name the unknown field, got: %v", err)
	}
}

func TestLoad_InvalidTool(t *testing.T) {
	path := writeConfig(t, "tool: \"pkg; rm -rf /\"\n")

	_, err := Load(path, true)
	if err == nil {
		t.Fatal("Load() should reject a tool with shell metacharacters")
	}
	if !strings.Contains(err.Error(), "tool:") {
		t.Errorf("error should mention tool, got: %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "@convex-dev/auth") {
		t.Errorf("marshaled config missing tool, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
