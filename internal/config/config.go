// Package config provides configuration for the chessrules tool: built-in
// defaults, an optional TOML file and command-line overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position move lists are played from. Empty means
	// the standard initial position.
	StartFEN string `toml:"start_fen"`

	// Workers is the batch pool size; 0 means one per CPU.
	Workers int `toml:"workers"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	Output  OutputConfig  `toml:"output"`
	Archive ArchiveConfig `toml:"archive"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output:   *NewOutputConfig(),
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %v: %w", err, errors.ErrInvalidConfig)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys %s: %w", strings.Join(keys, ", "), errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start_fen: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Archive.Validate()
}

// SlogLevel converts LogLevel to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// WorkerCount returns the effective pool size.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// NewStartBoard returns a board at the configured start position.
func (c *Config) NewStartBoard() (*engine.Board, error) {
	if c.StartFEN == "" {
		return engine.NewBoard(), nil
	}
	return engine.NewBoardFromFEN(c.StartFEN)
}
