package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing configuration.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithWorkers sets the batch pool size.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutputFile sets the output file.
func (b *ConfigBuilder) WithOutputFile(path string) *ConfigBuilder {
	b.cfg.Output.File = path
	return b
}

// WithArchiveDir stores saved games in a directory.
func (b *ConfigBuilder) WithArchiveDir(dir string) *ConfigBuilder {
	b.cfg.Archive.Dir = dir
	b.cfg.Archive.InMemory = false
	return b
}

// WithInMemoryArchive keeps saved games in memory.
func (b *ConfigBuilder) WithInMemoryArchive() *ConfigBuilder {
	b.cfg.Archive.Dir = ""
	b.cfg.Archive.InMemory = true
	return b
}
