package fblog

import (
	"sync"
	"sync/atomic"
)

// AsyncSink decouples log call sites from a slow sink. Records go onto a
// bounded queue and a single goroutine drains them in order; when the queue
// is full the record is dropped and counted rather than blocking the
// caller. Close flushes whatever is queued.
type AsyncSink struct {
	next  Sink
	queue chan Entry
	// quitMu orders enqueues against Close: writers hold it shared while
	// checking quit and sending, Close holds it exclusively while closing
	// quit. A record is therefore either enqueued before quit closes (and
	// flushed by the drain goroutine) or counted as dropped; it can never
	// slip in after the final flush and vanish.
	quitMu  sync.RWMutex
	quit    chan struct{}
	done    chan struct{}
	dropped atomic.Uint64
}

// NewAsyncSink wraps next with a queue of the given size and starts the
// drain goroutine. Size must be at least one.
func NewAsyncSink(next Sink, size int) *AsyncSink {
	if size < 1 {
		size = 1
	}
	s := &AsyncSink{
		next:  next,
		queue: make(chan Entry, size),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *AsyncSink) drain() {
	defer close(s.done)
	for {
		select {
		case entry := <-s.queue:
			_ = s.next.WriteLog(entry.Priority, entry.Tag, entry.Message)
		case <-s.quit:
			// Flush what is still queued, then stop.
			for {
				select {
				case entry := <-s.queue:
					_ = s.next.WriteLog(entry.Priority, entry.Tag, entry.Message)
				default:
					return
				}
			}
		}
	}
}

func (s *AsyncSink) WriteLog(priority Priority, tag string, message string) error {
	s.quitMu.RLock()
	defer s.quitMu.RUnlock()
	select {
	case <-s.quit:
		s.dropped.Add(1)
		return nil
	default:
	}
	select {
	case s.queue <- NewEntry(priority, tag, message):
	default:
		s.dropped.Add(1)
	}
	return nil
}

// Dropped returns how many records were discarded because the queue was
// full or the sink was closed.
func (s *AsyncSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops the drain goroutine after flushing queued records. Records
// written after Close are dropped.
func (s *AsyncSink) Close() error {
	s.quitMu.Lock()
	select {
	case <-s.quit:
		// already closed
	default:
		close(s.quit)
	}
	s.quitMu.Unlock()
	<-s.done
	return nil
}
