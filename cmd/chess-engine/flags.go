// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")

	// Search options
	moveTime  = flag.Int("movetime", 0, "Default time per move in milliseconds (0 = from config)")
	minDepth  = flag.Int("mindepth", 0, "First iterative deepening depth (0 = from config)")
	maxDepth  = flag.Int("maxdepth", 0, "Last iterative deepening depth (0 = from config)")
	sortDepth = flag.Int("sortdepth", 0, "Depth from which moves are ordered by a shallow search (0 = from config)")
	maxPlies  = flag.Int("maxplies", 0, "Longest move list accepted in a position command (0 = from config)")
	workers   = flag.Int("workers", 0, "Goroutines used by divide (0 = from config)")

	// Logging options
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile   = flag.String("log-file", "", "Write logs to this file instead of stderr")
	logFormat = flag.String("log-format", "", "Log format: console, json, legacy")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig builds the configuration from the config file, if any, and
// lays the command-line flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg = applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags returns a copy of cfg with every flag that was given applied.
func applyFlags(cfg *config.Config) *config.Config {
	b := config.FromConfig(cfg)
	applySearchFlags(b, cfg)
	applyLogFlags(b)
	return b.Build()
}

// applySearchFlags configures search settings.
func applySearchFlags(b *config.ConfigBuilder, cfg *config.Config) {
	if *moveTime > 0 {
		b.WithMoveTime(*moveTime)
	}
	if *minDepth > 0 || *maxDepth > 0 {
		lo, hi := cfg.Search.MinDepth, cfg.Search.MaxDepth
		if *minDepth > 0 {
			lo = *minDepth
		}
		if *maxDepth > 0 {
			hi = *maxDepth
		}
		b.WithDepthLimits(lo, hi)
	}
	if *sortDepth > 0 {
		b.WithSortDepth(*sortDepth)
	}
	if *maxPlies > 0 {
		b.WithMaxGamePlies(*maxPlies)
	}
	if *workers > 0 {
		b.WithDivideWorkers(*workers)
	}
}

// applyLogFlags configures logging settings.
func applyLogFlags(b *config.ConfigBuilder) {
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFormat != "" {
		b.WithLogFormat(*logFormat)
	}
	if *logFile != "" {
		b.WithLogFile(*logFile)
	}
}
