package payload

import "strings"

var (
	shellEscaper   = strings.NewReplacer(`"`, `\"`, "`", "'")
	shellUnescaper = strings.NewReplacer(`\"`, `"`)
)

// EscapeShellArg prepares s for placement between double quotes on a shell
// command line: every '"' becomes '\"' and every backtick becomes a single
// quote.
//
// The backtick substitution is lossy: after escaping, a backtick in the help
// text cannot be told apart from a single quote. The tool relies on this
// exact output, so it is kept.
func EscapeShellArg(s string) string {
	return shellEscaper.Replace(s)
}

// Unescape undoes the quote escaping of EscapeShellArg. Single quotes are
// left alone since they may have been backticks.
func Unescape(s string) string {
	return shellUnescaper.Replace(s)
}
