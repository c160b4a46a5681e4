package shared

import (
	"fmt"
	"strings"
)

// Difficulty is the game level chosen at new-game time
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Normal
	Hard
	Impossible
)

// MaxDifficulty is the number of difficulty levels
const MaxDifficulty = 5

var difficultyNames = [MaxDifficulty]string{"Beginner", "Easy", "Normal", "Hard", "Impossible"}

func (d Difficulty) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// IsValid reports whether d is one of the five levels
func (d Difficulty) IsValid() bool {
	return d >= Beginner && d <= Impossible
}

// ParseDifficulty accepts a level name (case-insensitive)
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(name, s) {
			return Difficulty(i), nil
		}
	}
	return Normal, NewValidationError("difficulty", fmt.Sprintf("unknown level %q", s))
}

// AdaptSkill applies the level's skill adjustment: +1 on Beginner and Easy,
// -1 (never below 1) on Impossible.
func (d Difficulty) AdaptSkill(level int) int {
	switch d {
	case Beginner, Easy:
		return level + 1
	case Impossible:
		if level-1 < 1 {
			return 1
		}
		return level - 1
	default:
		return level
	}
}

// StartCountdown is the number of days before a left system's market resets
func (d Difficulty) StartCountdown() int {
	return 3 + int(d)
}
