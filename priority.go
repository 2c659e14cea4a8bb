package fblog

import (
	"fmt"
	"strings"
)

// Priority is the severity of a log message. The numeric values mirror the
// android_LogPriority ladder, so a Priority can be handed to the platform
// logger unchanged.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

func (p Priority) String() string {
	switch p {
	case PriorityUnknown:
		return "unknown"
	case PriorityDefault:
		return "default"
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityFatal:
		return "fatal"
	case PrioritySilent:
		return "silent"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Letter returns the single-character logcat form of the priority.
func (p Priority) Letter() byte {
	switch p {
	case PriorityVerbose:
		return 'V'
	case PriorityDebug:
		return 'D'
	case PriorityInfo:
		return 'I'
	case PriorityWarn:
		return 'W'
	case PriorityError:
		return 'E'
	case PriorityFatal:
		return 'F'
	case PrioritySilent:
		return 'S'
	default:
		return '?'
	}
}

// normalize maps the pseudo priorities onto a real severity, the same way
// the platform logger treats them.
func (p Priority) normalize() Priority {
	if p <= PriorityDefault || p > PriorityFatal {
		return PriorityInfo
	}
	return p
}

// ParsePriority parses a priority from its full name or its single-letter
// logcat form, case insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(s) {
	case "v", "verbose":
		return PriorityVerbose, nil
	case "d", "debug":
		return PriorityDebug, nil
	case "i", "info":
		return PriorityInfo, nil
	case "w", "warn", "warning":
		return PriorityWarn, nil
	case "e", "error":
		return PriorityError, nil
	case "f", "fatal":
		return PriorityFatal, nil
	case "s", "silent":
		return PrioritySilent, nil
	default:
		return PriorityUnknown, fmt.Errorf("unknown priority %q", s)
	}
}
