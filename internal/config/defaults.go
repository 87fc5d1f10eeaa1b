package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: TimingConfig{
			FlashHoldMS:  800,
			FlashGapMS:   0,
			RoundDelayMS: 2000,
		},
		Scoring: ScoringConfig{
			Easy:   10,
			Medium: 15,
			Hard:   20,
		},
		DefaultDifficulty: DifficultyEasy,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSimonYAML
}
