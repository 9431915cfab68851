package config

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/multierr"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// SearchConfig holds settings for the searcher and the drivers around it.
type SearchConfig struct {
	// Iterative deepening runs from MinDepth up to MaxDepth.
	MinDepth int `yaml:"min_depth"`
	MaxDepth int `yaml:"max_depth"`

	// SortDepth is the depth from which moves are ordered by a shallow
	// search; the shallow search is SortDepth plies less deep.
	SortDepth int `yaml:"sort_depth"`

	// MaxExtensionPly bounds how far beyond the root single-reply nodes are
	// searched without consuming depth.
	MaxExtensionPly int `yaml:"max_extension_ply"`

	// MoveTimeMS is the budget of a "go" without movetime, in milliseconds.
	MoveTimeMS int `yaml:"movetime_ms"`

	// MaxGamePlies caps the moves accepted in a position command.
	MaxGamePlies int `yaml:"max_game_plies"`

	// DivideWorkers is the number of goroutines perft divide runs on.
	DivideWorkers int `yaml:"divide_workers"`
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		MinDepth:        5,
		MaxDepth:        64,
		SortDepth:       5,
		MaxExtensionPly: 64,
		MoveTimeMS:      10000,
		MaxGamePlies:    400,
		DivideWorkers:   runtime.NumCPU(),
	}
}

// MoveTime returns the default move budget as a duration.
func (s *SearchConfig) MoveTime() time.Duration {
	return time.Duration(s.MoveTimeMS) * time.Millisecond
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	var err error
	if s.MinDepth < 1 {
		err = multierr.Append(err, fmt.Errorf("min depth (%d) < 1: %w", s.MinDepth, errors.ErrInvalidConfig))
	}
	if s.MaxDepth < s.MinDepth {
		err = multierr.Append(err, fmt.Errorf("max depth (%d) < min depth (%d): %w",
			s.MaxDepth, s.MinDepth, errors.ErrInvalidConfig))
	}
	if s.SortDepth < 1 {
		err = multierr.Append(err, fmt.Errorf("sort depth (%d) < 1: %w", s.SortDepth, errors.ErrInvalidConfig))
	}
	if s.MaxExtensionPly < 0 {
		err = multierr.Append(err, fmt.Errorf("max extension ply (%d) < 0: %w", s.MaxExtensionPly, errors.ErrInvalidConfig))
	}
	if s.MoveTimeMS < 1 {
		err = multierr.Append(err, fmt.Errorf("movetime (%d ms) < 1: %w", s.MoveTimeMS, errors.ErrInvalidConfig))
	}
	if s.MaxGamePlies < 1 {
		err = multierr.Append(err, fmt.Errorf("max game plies (%d) < 1: %w", s.MaxGamePlies, errors.ErrInvalidConfig))
	}
	if s.DivideWorkers < 1 {
		err = multierr.Append(err, fmt.Errorf("divide workers (%d) < 1: %w", s.DivideWorkers, errors.ErrInvalidConfig))
	}
	return err
}
