// Package envfile reads the project's local environment file and appends
// the run-once completion marker to it.
//
// The parsed values are returned as a private map; the process environment
// is never modified.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// ErrNotFound indicates the environment file does not exist.
var ErrNotFound = errors.New("environment file not found")

// Env is a flat mapping of keys to values loaded from an environment file.
type Env map[string]string

// Keys returns the keys of e in sorted order.
func (e Env) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Exists reports whether the file at path exists.
// Errors other than not-exist (e.g. permission denied) are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Load parses the KEY=VALUE file at path. Comments, blank lines, export
// prefixes and quoted values are handled by godotenv.
// Returns an error wrapping ErrNotFound if the file does not exist.
func Load(path string) (Env, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return Env(values), nil
}
