package fblog

import (
	"sync"
)

// Sink receives log records after tag filtering and formatting. The priority
// handed to a sink is always a real severity (verbose through fatal).
// Implementations must be safe for concurrent use.
type Sink interface {
	WriteLog(priority Priority, tag string, message string) error
}

var (
	outputMu sync.RWMutex
	output   Sink = platformSink()
)

// SetOutput replaces the process-wide sink. Passing nil restores the
// platform default. Safe to call while other goroutines are logging.
func SetOutput(s Sink) {
	if s == nil {
		s = platformSink()
	}
	outputMu.Lock()
	output = s
	outputMu.Unlock()
}

// Output returns the sink currently receiving log records.
func Output() Sink {
	outputMu.RLock()
	defer outputMu.RUnlock()
	return output
}
