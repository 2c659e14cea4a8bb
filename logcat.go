package fblog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// textSink renders entries in logcat threadtime form onto an io.Writer:
//
//	MM-DD HH:MM:SS.mmm   PID L/tag: message
//
// A message containing newlines is written as one line per segment, the way
// the platform logger splits multi-line payloads.
type textSink struct {
	mu sync.Mutex
	w  io.Writer
}

// TextSink returns a sink writing threadtime-formatted lines to w.
func TextSink(w io.Writer) Sink {
	return &textSink{w: w}
}

func (s *textSink) WriteLog(priority Priority, tag string, message string) error {
	now := time.Now()
	pid := os.Getpid()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range splitLines(message) {
		if _, err := fmt.Fprintln(s.w, formatThreadtime(now, pid, priority, tag, line)); err != nil {
			return err
		}
	}
	return nil
}

// splitLines breaks a message on newlines, dropping a single trailing
// newline so that "msg\n" still produces one log line.
func splitLines(message string) []string {
	message = strings.TrimSuffix(message, "\n")
	return strings.Split(message, "\n")
}
