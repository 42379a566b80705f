package envfile

import (
	"fmt"
	"os"
)

// MarkerKey is set in the environment file once a run-once setup completes.
const MarkerKey = "SETUP_SCRIPT_RAN"

// MarkerLine is the sentinel appended by AppendMarker.
const MarkerLine = MarkerKey + "=1"

// HasMarker reports whether env already carries a non-empty marker.
func HasMarker(env Env) bool {
	return env[MarkerKey] != ""
}

// AppendMarker appends "\n" + MarkerLine + "\n" to the existing file at path.
// The write is a plain append: not atomic and not locked against other runs.
func AppendMarker(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}

	if _, err := f.WriteString("\n" + MarkerLine + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append marker to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
