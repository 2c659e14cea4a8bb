package fblog

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// captureSink records everything it receives so tests can assert on the
// dispatch path without touching a real sink.
type captureSink struct {
	mu      sync.Mutex
	entries []Entry
}

func (c *captureSink) WriteLog(priority Priority, tag string, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Priority: priority, Tag: tag, Message: message})
	return nil
}

func (c *captureSink) list() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entriesCopy := make([]Entry, len(c.entries))
	copy(entriesCopy, c.entries)
	return entriesCopy
}

func (c *captureSink) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// setupCapture installs a capture sink and restores package state when the
// test finishes.
func setupCapture(t *testing.T) *captureSink {
	t.Helper()
	sink := &captureSink{}
	SetOutput(sink)
	t.Cleanup(func() {
		SetOutput(nil)
		ResetTagLevels()
		CaptureRecent(0)
		ClearRecent()
	})
	return sink
}

func TestSeverityHelpersForward(t *testing.T) {
	tests := []struct {
		name     string
		log      func(tag, format string, args ...any)
		expected Priority
	}{
		{name: "Debug", log: Debug, expected: PriorityDebug},
		{name: "Info", log: Info, expected: PriorityInfo},
		{name: "Warn", log: Warn, expected: PriorityWarn},
		{name: "Error", log: Error, expected: PriorityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := setupCapture(t)

			tt.log("core", "value is %d", 42)

			entries := sink.list()
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0].Priority != tt.expected {
				t.Errorf("priority = %v, want %v", entries[0].Priority, tt.expected)
			}
			if entries[0].Tag != "core" {
				t.Errorf("tag = %q, want %q", entries[0].Tag, "core")
			}
			if entries[0].Message != "value is 42" {
				t.Errorf("message = %q, want %q", entries[0].Message, "value is 42")
			}
		})
	}
}

func TestVerboseCompiledInByDefault(t *testing.T) {
	if !VerboseEnabled {
		t.Skip("built with fblog_ndebug")
	}
	sink := setupCapture(t)

	Verbose("core", "trace %s", "detail")

	entries := sink.list()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Priority != PriorityVerbose {
		t.Errorf("priority = %v, want %v", entries[0].Priority, PriorityVerbose)
	}
}

func TestPrintNormalizesPseudoPriorities(t *testing.T) {
	sink := setupCapture(t)

	Print(PriorityUnknown, "core", "one")
	Print(PriorityDefault, "core", "two")
	Print(PrioritySilent, "core", "three")

	for i, entry := range sink.list() {
		if entry.Priority != PriorityInfo {
			t.Errorf("entry %d priority = %v, want %v", i, entry.Priority, PriorityInfo)
		}
	}
	if sink.len() != 3 {
		t.Fatalf("got %d entries, want 3", sink.len())
	}
}

func TestSilentTagSuppressesEverything(t *testing.T) {
	sink := setupCapture(t)
	SetTagLevel("quiet", PrioritySilent)

	Debug("quiet", "dropped")
	Error("quiet", "dropped")
	Info("loud", "kept")

	entries := sink.list()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Tag != "loud" {
		t.Errorf("tag = %q, want %q", entries[0].Tag, "loud")
	}
}

func TestFatalWritesThenPanics(t *testing.T) {
	sink := setupCapture(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Fatal did not panic")
		}
		if r != "core: broke: disk" {
			t.Errorf("panic value = %v, want %q", r, "core: broke: disk")
		}
		entries := sink.list()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Priority != PriorityFatal {
			t.Errorf("priority = %v, want %v", entries[0].Priority, PriorityFatal)
		}
	}()

	Fatal("core", "broke: %s", "disk")
}

func TestFatalPanicsEvenWhenFiltered(t *testing.T) {
	sink := setupCapture(t)
	SetTagLevel("quiet", PrioritySilent)

	defer func() {
		if recover() == nil {
			t.Fatal("Fatal did not panic")
		}
		if sink.len() != 0 {
			t.Errorf("got %d entries, want 0 (tag is silent)", sink.len())
		}
	}()

	Fatal("quiet", "still fatal")
}

func TestConditionalVariants(t *testing.T) {
	sink := setupCapture(t)

	DebugIf(false, "core", "dropped")
	ErrorIf(false, "core", "dropped")
	DebugIf(true, "core", "kept")
	WarnIf(true, "core", "kept too")

	if sink.len() != 2 {
		t.Fatalf("got %d entries, want 2", sink.len())
	}
}

func TestAssert(t *testing.T) {
	sink := setupCapture(t)

	Assert(true, "core", "fine")
	if sink.len() != 0 {
		t.Fatalf("passing assert logged %d entries", sink.len())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("failing assert did not panic")
		}
		entries := sink.list()
		if len(entries) != 1 || entries[0].Priority != PriorityFatal {
			t.Errorf("failing assert entries = %+v, want one fatal", entries)
		}
	}()
	Assert(false, "core", "count mismatch: %d", 7)
}

func TestRecentBufferCapturesDispatch(t *testing.T) {
	setupCapture(t)
	CaptureRecent(2)

	Info("core", "one")
	Info("core", "two")
	Info("core", "three")

	entries := Recent()
	if len(entries) != 2 {
		t.Fatalf("got %d recent entries, want 2", len(entries))
	}
	if entries[0].Message != "two" || entries[1].Message != "three" {
		t.Errorf("recent = [%q %q], want [two three]", entries[0].Message, entries[1].Message)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	sink := setupCapture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("conc", "message %d", j)
			}
		}()
	}
	wg.Wait()

	if sink.len() != 400 {
		t.Errorf("got %d entries, want 400", sink.len())
	}
}

func TestTextSinkOutputShape(t *testing.T) {
	setupCapture(t)
	var buf bytes.Buffer
	SetOutput(TextSink(&buf))

	Warn("net", "first\nsecond")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	for i, want := range []string{"W/net: first", "W/net: second"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
		// Sink lines render through the same threadtime layout as
		// Entry.String.
		if !threadtimeRE.MatchString(lines[i]) {
			t.Errorf("line %d = %q does not match threadtime shape", i, lines[i])
		}
	}
}
