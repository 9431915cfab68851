package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Log formats understood by obslog.
const (
	LogFormatLegacy  = "legacy"
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogConfig holds the logger settings. Logs never go to stdout, which
// carries the UCI protocol.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File receives the logs instead of stderr when set.
	File string `yaml:"file"`

	// Caller adds the calling file and line to each entry.
	Caller bool `yaml:"caller"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: LogFormatConsole,
	}
}

// Validate checks the level and format names.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogFormatLegacy, LogFormatConsole, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("log format %q not one of legacy, console, json: %w", l.Format, errors.ErrInvalidConfig)
	}
}
