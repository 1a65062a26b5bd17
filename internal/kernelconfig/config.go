// Package kernelconfig holds the ambient configuration surface for a
// coopflow Kernel: the knobs an embedder sets once at startup rather
// than via KernelOption calls scattered through main (Expansion A.3).
package kernelconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a kernel's startup configuration.
type Config struct {
	// TickRate is the fixed delta a driver should pass to Kernel.Update
	// on each tick, when driving the kernel off a ticker rather than an
	// externally-owned game loop.
	TickRate time.Duration

	// DefaultTimeout is a timeout an application can pass to the Timed*
	// constructors. Those constructors always take an explicit timeout
	// and do not read this field themselves.
	DefaultTimeout time.Duration

	// PublisherBacklog is a capacity an application can give the
	// buffered channel it hands to a ChannelPublisher, which drops
	// events once that channel is full. Nothing in the library sizes a
	// channel from this field itself.
	PublisherBacklog int

	// LogLevel is parsed by internal/logsink.ParseLevel when wiring a
	// SlogSink.
	LogLevel string
}

// rawConfig mirrors Config but with duration fields as Go duration
// strings ("20ms", "1.5s"), since yaml.v3 has no built-in notion of
// time.Duration.
type rawConfig struct {
	TickRate         string `yaml:"tick_rate"`
	DefaultTimeout   string `yaml:"default_timeout"`
	PublisherBacklog int    `yaml:"publisher_backlog"`
	LogLevel         string `yaml:"log_level"`
}

// UnmarshalYAML parses duration fields with time.ParseDuration. Fields
// the document does not set (or sets to an empty string, or a zero
// publisher_backlog) are left as they were on c, which is how LoadConfig
// layers a file onto DefaultConfig.
func (c *Config) UnmarshalYAML(unmarshal func(any) error) error {
	var raw rawConfig
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw.TickRate != "" {
		d, err := time.ParseDuration(raw.TickRate)
		if err != nil {
			return fmt.Errorf("tick_rate: %w", err)
		}
		c.TickRate = d
	}
	if raw.DefaultTimeout != "" {
		d, err := time.ParseDuration(raw.DefaultTimeout)
		if err != nil {
			return fmt.Errorf("default_timeout: %w", err)
		}
		c.DefaultTimeout = d
	}
	if raw.PublisherBacklog != 0 {
		c.PublisherBacklog = raw.PublisherBacklog
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	return nil
}

// DefaultConfig returns the configuration a Kernel runs with if nothing
// is loaded: 60Hz ticking, a five-second default timeout, a modest
// publisher backlog, info-level logging.
func DefaultConfig() Config {
	return Config{
		TickRate:         16667 * time.Microsecond,
		DefaultTimeout:   5 * time.Second,
		PublisherBacklog: 256,
		LogLevel:         "info",
	}
}

// LoadConfig reads and parses a YAML config file at path, layering its
// values onto DefaultConfig: anything the file omits keeps its default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
