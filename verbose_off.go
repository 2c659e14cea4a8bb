//go:build fblog_ndebug && !fblog_verbose
// +build fblog_ndebug,!fblog_verbose

package fblog

// VerboseEnabled is false in stripped builds. Guarded blocks are dead code
// and cost nothing.
const VerboseEnabled = false

// Verbose is a no-op in stripped builds.
func Verbose(string, string, ...any) {}

// VerboseIf is a no-op in stripped builds.
func VerboseIf(bool, string, string, ...any) {}

// Verbose is a no-op in stripped builds.
func (l *Logger) Verbose(string, ...any) {}
