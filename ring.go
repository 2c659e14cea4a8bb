package fblog

import (
	"sync"
)

// RecentBuffer keeps the newest entries up to a fixed capacity, oldest
// dropped first. It exists so a crash handler can attach the last few log
// lines to a report. Capacity zero disables it, which is the default.
type RecentBuffer struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

func NewRecentBuffer(capacity int) *RecentBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &RecentBuffer{
		entries: make([]Entry, 0, capacity),
		cap:     capacity,
	}
}

func (rb *RecentBuffer) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.cap = capacity
	if len(rb.entries) > capacity {
		rb.entries = append([]Entry(nil), rb.entries[len(rb.entries)-capacity:]...)
	}
}

func (rb *RecentBuffer) Push(entry Entry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.cap == 0 {
		return
	}
	rb.entries = append(rb.entries, entry)
	if len(rb.entries) > rb.cap {
		rb.entries = rb.entries[1:]
	}
}

func (rb *RecentBuffer) List() []Entry {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	// Copy so callers can't race with later pushes
	entriesCopy := make([]Entry, len(rb.entries))
	copy(entriesCopy, rb.entries)
	return entriesCopy
}

func (rb *RecentBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.entries = rb.entries[:0]
}

func (rb *RecentBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return len(rb.entries)
}

var recent = NewRecentBuffer(0)

// CaptureRecent sizes the process-wide recent-entries buffer. Zero turns
// capture off.
func CaptureRecent(n int) {
	recent.SetCapacity(n)
}

// Recent returns a copy of the captured entries, oldest first.
func Recent() []Entry {
	return recent.List()
}

// ClearRecent drops all captured entries without changing the capacity.
func ClearRecent() {
	recent.Clear()
}
