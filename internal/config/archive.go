package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ArchiveConfig locates the saved-game archive.
type ArchiveConfig struct {
	// Dir is the badger directory
	Dir string `toml:"dir"`

	// InMemory keeps the archive in memory for the life of the process
	InMemory bool `toml:"in_memory"`
}

// Enabled reports whether an archive is configured.
func (a *ArchiveConfig) Enabled() bool {
	return a.Dir != "" || a.InMemory
}

// Validate rejects a directory combined with in-memory mode.
func (a *ArchiveConfig) Validate() error {
	if a.Dir != "" && a.InMemory {
		return fmt.Errorf("archive dir %q set together with in_memory: %w", a.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
