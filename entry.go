package fblog

import (
	"fmt"
	"os"
	"time"
)

// Entry is a single log record as seen by sinks and the recent-entries
// buffer.
type Entry struct {
	Priority  Priority
	Tag       string
	Message   string
	Timestamp time.Time
	PID       int
}

func NewEntry(priority Priority, tag string, message string) Entry {
	return Entry{
		Priority:  priority,
		Tag:       tag,
		Message:   message,
		Timestamp: time.Now(),
		PID:       os.Getpid(),
	}
}

// formatThreadtime is the one place the logcat threadtime layout lives;
// Entry.String and the text sink both render through it.
func formatThreadtime(at time.Time, pid int, priority Priority, tag string, message string) string {
	return fmt.Sprintf("%s %5d %c/%s: %s",
		at.Format("01-02 15:04:05.000"), pid, priority.Letter(), tag, message)
}

// String renders the entry in logcat threadtime form.
func (e Entry) String() string {
	return formatThreadtime(e.Timestamp, e.PID, e.Priority, e.Tag, e.Message)
}
