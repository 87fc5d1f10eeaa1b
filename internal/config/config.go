// Package config provides YAML-based game configuration loading and
// difficulty definitions for Simon.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Timing            TimingConfig  `yaml:"timing"`
	Scoring           ScoringConfig `yaml:"scoring"`
	DefaultDifficulty Difficulty    `yaml:"default_difficulty"`
}

// TimingConfig defines the playback cadence and round pacing.
type TimingConfig struct {
	FlashHoldMS  int `yaml:"flash_hold_ms"`
	FlashGapMS   int `yaml:"flash_gap_ms"`
	RoundDelayMS int `yaml:"round_delay_ms"`
}

// ScoringConfig defines the points awarded per completed round.
type ScoringConfig struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// FlashHold returns the duration a pad stays lit.
func (t TimingConfig) FlashHold() time.Duration {
	return time.Duration(t.FlashHoldMS) * time.Millisecond
}

// FlashGap returns the dark pause between pulses.
func (t TimingConfig) FlashGap() time.Duration {
	return time.Duration(t.FlashGapMS) * time.Millisecond
}

// RoundDelay returns the pause between a completed round and the next one.
func (t TimingConfig) RoundDelay() time.Duration {
	return time.Duration(t.RoundDelayMS) * time.Millisecond
}

// PointsFor returns the per-round bonus for a difficulty.
func (s ScoringConfig) PointsFor(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	default:
		return s.Easy
	}
}

// Validate reports configuration values the game cannot run with.
func (c SimonConfig) Validate() error {
	var errs []error
	if c.Timing.FlashHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.flash_hold_ms must be positive, got %d", c.Timing.FlashHoldMS))
	}
	if c.Timing.FlashGapMS < 0 {
		errs = append(errs, fmt.Errorf("timing.flash_gap_ms must not be negative, got %d", c.Timing.FlashGapMS))
	}
	if c.Timing.RoundDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.round_delay_ms must be positive, got %d", c.Timing.RoundDelayMS))
	}
	for _, d := range Difficulties() {
		if p := c.Scoring.PointsFor(d); p <= 0 {
			errs = append(errs, fmt.Errorf("scoring.%s must be positive, got %d", d, p))
		}
	}
	if c.DefaultDifficulty != "" {
		if _, err := ParseDifficulty(string(c.DefaultDifficulty)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
