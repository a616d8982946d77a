package config

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	// Workers is the number of goroutines used by divide
	Workers int `toml:"workers"`

	// TableSize caps the shared perft cache; 0 is unlimited, negative disables it
	TableSize int `toml:"table_size"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   defaultWorkers(),
		TableSize: 1 << 20,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
