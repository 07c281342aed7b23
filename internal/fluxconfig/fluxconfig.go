// Package fluxconfig holds process-wide tuning for the intent pipeline,
// grounded on the teacher's internal/config package: a YAML-backed
// struct with a DefaultConfig constructor, loaded via gopkg.in/yaml.v3.
package fluxconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/industry-digital/flux-game-sub002/internal/fluxlog"
)

// ResolverConfig tunes internal/resolver's fuzzy matching (spec §4.3,
// GLOSSARY "Prefix match threshold").
type ResolverConfig struct {
	PrefixMatchThreshold int `yaml:"prefix_match_threshold"`
	MinPrefixLen         int `yaml:"min_prefix_len"`
}

// IntentConfig tunes internal/intent's id generation.
type IntentConfig struct {
	IDLength int `yaml:"id_length"`
}

// LoggingConfig carries fluxlog.Options in YAML-serializable form, plus
// a Level field that fluxlog.Options has no counterpart for; kept as a
// distinct struct (rather than embedding fluxlog.Options directly) so
// fluxconfig owns the wire format independently of fluxlog's Go API.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
}

// Config holds all fluxmud pipeline configuration.
type Config struct {
	Resolver ResolverConfig `yaml:"resolver"`
	Intent   IntentConfig   `yaml:"intent"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultConfig returns the pipeline's default configuration.
func DefaultConfig() *Config {
	return &Config{
		Resolver: ResolverConfig{
			PrefixMatchThreshold: 3,
			MinPrefixLen:         2,
		},
		Intent: IntentConfig{
			IDLength: 24,
		},
		Logging: LoggingConfig{
			DebugMode:  false,
			Level:      "info",
			Categories: map[string]bool{},
		},
	}
}

// Load reads configuration from a YAML file at path, falling back to
// DefaultConfig when the file does not exist. Any other read/parse
// error is returned to the caller.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("fluxconfig: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("fluxconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("fluxconfig: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyLogging configures fluxlog from c.Logging's DebugMode and
// Categories. Call once at process startup after Load. Level is not
// read: the logger runs at debug level when DebugMode is set and at info
// level otherwise.
func (c *Config) ApplyLogging() error {
	return fluxlog.Configure(fluxlog.Options{
		DebugMode:  c.Logging.DebugMode,
		Categories: c.Logging.Categories,
	})
}
