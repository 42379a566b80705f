package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var file bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&file)
	l.SetErrOutput(nil)

	l.Debug("hidden")
	l.Info("shown")

	out := file.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, "[INFO] shown") {
		t.Errorf("expected info message in file output, got: %s", out)
	}
}

func TestLogger_StderrOnlyWarnAndError(t *testing.T) {
	var stderr bytes.Buffer
	l := NewLogger()
	l.SetErrOutput(&stderr)

	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := stderr.String()
	if strings.Contains(out, "info line") {
		t.Errorf("info should not reach stderr unless verbose, got: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn line\n") {
		t.Errorf("expected warn on stderr, got: %q", out)
	}
	if !strings.Contains(out, "[ERROR] error line\n") {
		t.Errorf("expected error on stderr, got: %q", out)
	}
}

func TestLogger_VerboseMirrorsDebug(t *testing.T) {
	var stderr bytes.Buffer
	l := NewLogger()
	l.SetErrOutput(&stderr)
	l.SetLevel(LevelDebug)
	l.SetVerbose(true)

	l.Debug("command: %s", "npx tool")

	if got := stderr.String(); got != "[DEBUG] command: npx tool\n" {
		t.Errorf("stderr = %q, want debug line", got)
	}
}

func TestOpenLogFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "authsetup.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	_ = f.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
