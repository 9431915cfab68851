// Package config holds the engine settings: their defaults, loading them
// from a YAML file and validating them.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine: *NewEngineConfig(),
		Search: *NewSearchConfig(),
		Log:    *NewLogConfig(),
	}
}

// Validate checks every section and reports all problems at once. Each of
// them wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Engine.Validate(),
		c.Search.Validate(),
		c.Log.Validate(),
	)
}

// LoadFile reads a YAML document from path on top of the defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Load decodes a YAML document from r on top of the defaults and validates
// the result. Keys that match no setting are rejected. An empty document
// yields the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
