package fblog

import (
	"fmt"
	"sync/atomic"
)

// Logger binds a tag once so call sites don't repeat it, the way C callers
// define a per-file log tag. All loggers share the process sink.
type Logger struct {
	tag   string
	level atomic.Int32 // PriorityUnknown = inherit from the tag registry
}

// New returns a logger bound to tag. Its level is inherited from the tag
// registry until SetLevel is called.
func New(tag string) *Logger {
	return &Logger{tag: tag}
}

func (l *Logger) Tag() string {
	return l.tag
}

// SetLevel overrides the minimum priority for this logger instance only.
// PriorityUnknown restores registry-based filtering.
func (l *Logger) SetLevel(p Priority) {
	l.level.Store(int32(p))
}

func (l *Logger) loggable(p Priority) bool {
	threshold := Priority(l.level.Load())
	if threshold == PriorityUnknown {
		return IsLoggable(l.tag, p)
	}
	if threshold >= PrioritySilent {
		return false
	}
	return p >= threshold
}

func (l *Logger) submit(p Priority, format string, args ...any) {
	if !l.loggable(p) {
		return
	}
	emit(p, l.tag, fmt.Sprintf(format, args...))
}

// Debug logs a formatted message at debug priority under the logger's tag.
func (l *Logger) Debug(format string, args ...any) {
	l.submit(PriorityDebug, format, args...)
}

// Info logs a formatted message at info priority under the logger's tag.
func (l *Logger) Info(format string, args ...any) {
	l.submit(PriorityInfo, format, args...)
}

// Warn logs a formatted message at warn priority under the logger's tag.
func (l *Logger) Warn(format string, args ...any) {
	l.submit(PriorityWarn, format, args...)
}

// Error logs a formatted message at error priority under the logger's tag.
func (l *Logger) Error(format string, args ...any) {
	l.submit(PriorityError, format, args...)
}

// Fatal logs at fatal priority under the logger's tag and panics.
func (l *Logger) Fatal(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if l.loggable(PriorityFatal) {
		emit(PriorityFatal, l.tag, message)
	}
	panic(l.tag + ": " + message)
}
