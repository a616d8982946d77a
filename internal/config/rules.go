package config

// RulesConfig holds settings that change how board edits are policed.
type RulesConfig struct {
	// StrictKingRemoval refuses to destroy the last king of a colour.
	StrictKingRemoval bool `toml:"strict_king_removal"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
