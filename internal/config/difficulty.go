package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the palette size and the per-round bonus.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name to a Difficulty.
// Matching is case-insensitive; "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Canonical maps aliases and other spellings accepted by ParseDifficulty to
// their constant. Unknown names fall back to easy.
func (d Difficulty) Canonical() Difficulty {
	if c, err := ParseDifficulty(string(d)); err == nil {
		return c
	}
	return DifficultyEasy
}

// Rank orders difficulties: easy=0, medium=1, hard=2.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// Title returns the capitalized display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}
