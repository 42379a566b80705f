// Package version provides version information for authsetup.
// The Version variable is set at build time via ldflags.
package version

import "strings"

// Version is the current version of authsetup.
// Set at build time via: -ldflags "-X github.com/xdg/authsetup/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// IsDev reports whether this is a development build.
func IsDev() bool {
	return Version == "" || strings.Contains(Version, "dev")
}
