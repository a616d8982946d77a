package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable lines
	JSON                     // One JSON document per command
)

// String returns the name of the format as used in config files.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// UnmarshalText lets config files name the format.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "text":
		*f = Text
	case "json":
		*f = JSON
	default:
		return fmt.Errorf("output format %q: %w", text, errors.ErrInvalidConfig)
	}
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (f OutputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat `toml:"format"`

	// ShowBoard prints a diagram of the position before other output
	ShowBoard bool `toml:"show_board"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}
