package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// EngineConfig holds the identity the engine reports to a GUI.
type EngineConfig struct {
	// Name is sent as "id name".
	Name string `yaml:"name"`

	// Author is sent as "id author".
	Author string `yaml:"author"`
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Name:   "Go Chess Engine",
		Author: "lgbarn",
	}
}

// Validate checks that the identity fits on a single protocol line.
func (e *EngineConfig) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("engine name is empty: %w", errors.ErrInvalidConfig)
	}
	if strings.ContainsAny(e.Name+e.Author, "\r\n") {
		return fmt.Errorf("engine name and author must be single line: %w", errors.ErrInvalidConfig)
	}
	return nil
}
