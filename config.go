package fblog

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml"
)

// Config is the TOML-mappable view of the package state: default and
// per-tag levels, sink destination, async queueing and the recent-entries
// buffer.
type Config struct {
	Level     string            `toml:"level"`      // default minimum priority
	Tags      map[string]string `toml:"tags"`       // per-tag minimum priorities
	Recent    int               `toml:"recent"`     // recent-entries buffer capacity
	Async     bool              `toml:"async"`      // queue records in front of the sink
	QueueSize int               `toml:"queue_size"` // async queue capacity
	File      FileConfig        `toml:"file"`       // empty filename means stderr
}

const defaultQueueSize = 1024

func DefaultConfig() *Config {
	return &Config{
		Level:     PriorityVerbose.String(),
		Tags:      make(map[string]string),
		Recent:    0,
		Async:     false,
		QueueSize: defaultQueueSize,
	}
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Save writes the config as TOML, creating or truncating path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(*c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var applyMu sync.Mutex
var appliedAsync *AsyncSink

// Apply installs the config: levels, recent buffer and sink. Applying a new
// config closes the async queue installed by a previous Apply, so repeated
// applies (config reload) don't leak drain goroutines.
func (c *Config) Apply() error {
	minimum, err := ParsePriority(c.Level)
	if err != nil {
		return fmt.Errorf("level: %w", err)
	}
	tags := make(map[string]Priority, len(c.Tags))
	for tag, level := range c.Tags {
		p, err := ParsePriority(level)
		if err != nil {
			return fmt.Errorf("tag %q: %w", tag, err)
		}
		tags[tag] = p
	}

	ResetTagLevels()
	SetMinPriority(minimum)
	for tag, p := range tags {
		SetTagLevel(tag, p)
	}
	CaptureRecent(c.Recent)

	var sink Sink = platformSink()
	if c.File.Filename != "" {
		sink = FileSink(c.File)
	}

	applyMu.Lock()
	defer applyMu.Unlock()
	var async *AsyncSink
	if c.Async {
		size := c.QueueSize
		if size <= 0 {
			size = defaultQueueSize
		}
		async = NewAsyncSink(sink, size)
		sink = async
	}
	SetOutput(sink)
	if appliedAsync != nil {
		appliedAsync.Close()
	}
	appliedAsync = async
	return nil
}
