package config

// ConfigBuilder provides a fluent API for building Config instances. The
// command line uses it to lay flag values over a loaded file.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return FromConfig(NewConfig())
}

// FromConfig creates a ConfigBuilder that modifies a copy of cfg.
func FromConfig(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config. It is not validated.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMoveTime sets the default move budget in milliseconds.
func (b *ConfigBuilder) WithMoveTime(ms int) *ConfigBuilder {
	b.cfg.Search.MoveTimeMS = ms
	return b
}

// WithDepthLimits sets the iterative deepening range.
func (b *ConfigBuilder) WithDepthLimits(minDepth, maxDepth int) *ConfigBuilder {
	b.cfg.Search.MinDepth = minDepth
	b.cfg.Search.MaxDepth = maxDepth
	return b
}

// WithSortDepth sets the depth from which the shallow search ordering is used.
func (b *ConfigBuilder) WithSortDepth(depth int) *ConfigBuilder {
	b.cfg.Search.SortDepth = depth
	return b
}

// WithMaxGamePlies sets the longest move list a position command may carry.
func (b *ConfigBuilder) WithMaxGamePlies(plies int) *ConfigBuilder {
	b.cfg.Search.MaxGamePlies = plies
	return b
}

// WithDivideWorkers sets the perft divide parallelism.
func (b *ConfigBuilder) WithDivideWorkers(n int) *ConfigBuilder {
	b.cfg.Search.DivideWorkers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogFile sends the logs to a file instead of stderr.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}
