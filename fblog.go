// Package fblog provides severity-tagged logging entry points that forward a
// log tag and a printf-style message to a platform log sink.
//
// The entry points use exactly the conventional Android severity set
// (Verbose, Debug, Info, Warn, Error, Fatal), but live behind their own
// names so they never collide with whatever else in a process calls itself
// "log". Verbose output is additionally stripped at build time: compiling
// with the fblog_ndebug tag turns Verbose into a no-op, and the
// fblog_verbose tag forces it back on. See VerboseEnabled.
package fblog

import (
	"fmt"
)

// Print forwards a pre-formatted message to the sink, subject to tag
// filtering. It is the lowest-level entry point; the severity helpers all
// end up here. Pseudo priorities (unknown, default) are logged as info.
func Print(priority Priority, tag string, message string) {
	priority = priority.normalize()
	if !IsLoggable(tag, priority) {
		return
	}
	emit(priority, tag, message)
}

// emit hands a record to the recent-entries buffer and the sink. Filtering
// has already happened. Sink failures are absorbed here: a log call site
// never observes them.
func emit(priority Priority, tag string, message string) {
	recent.Push(NewEntry(priority, tag, message))
	_ = Output().WriteLog(priority, tag, message)
}

func submit(priority Priority, tag string, format string, args ...any) {
	if !IsLoggable(tag, priority) {
		return
	}
	emit(priority, tag, fmt.Sprintf(format, args...))
}

// Debug logs a formatted message at debug priority.
func Debug(tag string, format string, args ...any) {
	submit(PriorityDebug, tag, format, args...)
}

// Info logs a formatted message at info priority.
func Info(tag string, format string, args ...any) {
	submit(PriorityInfo, tag, format, args...)
}

// Warn logs a formatted message at warn priority.
func Warn(tag string, format string, args ...any) {
	submit(PriorityWarn, tag, format, args...)
}

// Error logs a formatted message at error priority.
func Error(tag string, format string, args ...any) {
	submit(PriorityError, tag, format, args...)
}

// Fatal logs a formatted message at fatal priority and then panics. The
// panic fires even when the tag is filtered; only the sink write is
// suppressed in that case.
func Fatal(tag string, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if IsLoggable(tag, PriorityFatal) {
		emit(PriorityFatal, tag, message)
	}
	panic(tag + ": " + message)
}

// DebugIf logs at debug priority when cond holds.
func DebugIf(cond bool, tag string, format string, args ...any) {
	if cond {
		submit(PriorityDebug, tag, format, args...)
	}
}

// InfoIf logs at info priority when cond holds.
func InfoIf(cond bool, tag string, format string, args ...any) {
	if cond {
		submit(PriorityInfo, tag, format, args...)
	}
}

// WarnIf logs at warn priority when cond holds.
func WarnIf(cond bool, tag string, format string, args ...any) {
	if cond {
		submit(PriorityWarn, tag, format, args...)
	}
}

// ErrorIf logs at error priority when cond holds.
func ErrorIf(cond bool, tag string, format string, args ...any) {
	if cond {
		submit(PriorityError, tag, format, args...)
	}
}

// Assert logs fatal and panics when cond does not hold. It does nothing
// when cond holds.
func Assert(cond bool, tag string, format string, args ...any) {
	if cond {
		return
	}
	Fatal(tag, format, args...)
}
