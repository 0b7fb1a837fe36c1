package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Output formats.
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is "text" for numbered move lists or "json"
	Format string `toml:"format"`

	// File receives the output; empty means standard output
	File string `toml:"file"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Format: TextFormat}
}

// Validate checks the output format name.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case TextFormat, JSONFormat:
		return nil
	}
	return fmt.Errorf("output format %q: %w", o.Format, errors.ErrInvalidConfig)
}
