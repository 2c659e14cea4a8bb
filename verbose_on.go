//go:build !fblog_ndebug || fblog_verbose
// +build !fblog_ndebug fblog_verbose

package fblog

// VerboseEnabled reports whether verbose logging is compiled in. It is an
// untyped constant, so blocks guarded with
//
//	if fblog.VerboseEnabled { ... }
//
// are removed entirely from stripped builds and their argument expressions
// are never evaluated.
//
// Verbose is compiled in by default. Building with the fblog_ndebug tag
// strips it; building with fblog_verbose forces it back on regardless of
// fblog_ndebug.
const VerboseEnabled = true

// Verbose logs a formatted message at verbose priority.
func Verbose(tag string, format string, args ...any) {
	submit(PriorityVerbose, tag, format, args...)
}

// VerboseIf logs at verbose priority when cond holds.
func VerboseIf(cond bool, tag string, format string, args ...any) {
	if cond {
		submit(PriorityVerbose, tag, format, args...)
	}
}

// Verbose logs a formatted message at verbose priority under the logger's
// tag.
func (l *Logger) Verbose(format string, args ...any) {
	l.submit(PriorityVerbose, format, args...)
}
