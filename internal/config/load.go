package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// fileConfig is the on-disk shape of a config file. Absent keys leave the
// current values alone.
type fileConfig struct {
	Verbosity *int         `toml:"verbosity"`
	Rules     RulesConfig  `toml:"rules"`
	Perft     PerftConfig  `toml:"perft"`
	Output    OutputConfig `toml:"output"`
}

// LoadFile reads a TOML config file onto c and validates the result.
//
//	verbosity = 2
//
//	[rules]
//	strict_king_removal = true
//
//	[perft]
//	workers = 4
//	table_size = 0
//
//	[output]
//	format = "json"
//	show_board = true
func (c *Config) LoadFile(path string) error {
	fc := fileConfig{Rules: c.Rules, Perft: c.Perft, Output: c.Output}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config file %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config file %s: unknown keys %s: %w",
			path, strings.Join(keys, ", "), errors.ErrInvalidConfig)
	}

	if fc.Verbosity != nil {
		c.Verbosity = *fc.Verbosity
	}
	c.Rules = fc.Rules
	c.Perft = fc.Perft
	c.Output = fc.Output
	return c.Validate()
}

// Load creates a default Config and applies the TOML file at path.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}
