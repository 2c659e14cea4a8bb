package fblog

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// tagMap holds the per-tag minimum priorities plus the process-wide
// default. Tags without an explicit level fall back to the FBLOG_TAG_<TAG>
// environment variable (checked once per tag) and then to the default.
type tagMap struct {
	mu      sync.RWMutex
	levels  map[string]Priority
	checked map[string]bool // env already consulted for this tag
	min     Priority
}

func newTagMap() *tagMap {
	return &tagMap{
		levels:  make(map[string]Priority),
		checked: make(map[string]bool),
		min:     PriorityVerbose,
	}
}

var levels = newTagMap()

func (m *tagMap) set(tag string, p Priority) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[tag] = p
	m.checked[tag] = true
}

func (m *tagMap) resolve(tag string) Priority {
	m.mu.RLock()
	p, found := m.levels[tag]
	checked := m.checked[tag]
	min := m.min
	m.mu.RUnlock()
	if found {
		return p
	}
	if checked {
		return min
	}

	// First sighting of this tag: consult the environment, remembering the
	// outcome either way so the lookup happens once.
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, found := m.levels[tag]; found {
		return p
	}
	m.checked[tag] = true
	if v := os.Getenv("FBLOG_TAG_" + tag); v != "" {
		if p, err := ParsePriority(v); err == nil {
			m.levels[tag] = p
			return p
		}
	}
	return m.min
}

func (m *tagMap) setMin(p Priority) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.min = p
}

func (m *tagMap) minimum() Priority {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.min
}

func (m *tagMap) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels = make(map[string]Priority)
	m.checked = make(map[string]bool)
	m.min = PriorityVerbose
}

// SetMinPriority sets the minimum priority for tags with no explicit level.
// The initial minimum is verbose, i.e. everything compiled in gets logged.
func SetMinPriority(p Priority) {
	levels.setMin(p)
}

// MinPriority returns the process-wide default minimum priority.
func MinPriority() Priority {
	return levels.minimum()
}

// SetTagLevel sets the minimum priority for a single tag. PrioritySilent
// suppresses all output for the tag.
func SetTagLevel(tag string, p Priority) {
	levels.set(tag, p)
}

// TagLevel returns the effective minimum priority for a tag.
func TagLevel(tag string) Priority {
	return levels.resolve(tag)
}

// ResetTagLevels drops all per-tag levels and restores the default minimum.
func ResetTagLevels() {
	levels.reset()
}

// IsLoggable reports whether a message at priority p under the given tag
// would reach the sink.
func IsLoggable(tag string, p Priority) bool {
	threshold := levels.resolve(tag)
	if threshold >= PrioritySilent {
		return false
	}
	return p >= threshold
}

// ParseFilterSpec parses a comma or space separated list of tag:priority
// pairs, e.g. "net:V,db:E,*:S". The "*" tag sets the default minimum. The
// priority may be a letter or a full name; a bare tag means verbose.
func ParseFilterSpec(spec string) (map[string]Priority, error) {
	out := make(map[string]Priority)
	for _, field := range strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		tag, level, found := strings.Cut(field, ":")
		if tag == "" {
			return nil, fmt.Errorf("empty tag in filter spec %q", spec)
		}
		p := PriorityVerbose
		if found {
			var err error
			p, err = ParsePriority(level)
			if err != nil {
				return nil, fmt.Errorf("filter spec %q: %w", spec, err)
			}
		}
		out[tag] = p
	}
	return out, nil
}

// ApplyFilterSpec parses spec and installs the resulting tag levels.
func ApplyFilterSpec(spec string) error {
	parsed, err := ParseFilterSpec(spec)
	if err != nil {
		return err
	}
	for tag, p := range parsed {
		if tag == "*" {
			SetMinPriority(p)
			continue
		}
		SetTagLevel(tag, p)
	}
	return nil
}
