package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDifficulty is returned for difficulty names outside easy/medium/hard.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Level is a named difficulty level.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels lists all levels from easiest to hardest.
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// ParseLevel converts a user-supplied name to a Level.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseLevel(name string) (Level, error) {
	lvl := Level(strings.ToLower(strings.TrimSpace(name)))
	if !lvl.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, name)
	}
	return lvl, nil
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// Title returns the display name ("Easy", "Medium", "Hard").
func (l Level) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Settings are the per-level tuning values.
type Settings struct {
	FallSpeed     float64 `yaml:"fall_speed" toml:"fall_speed"`         // Field units per update
	SpawnInterval float64 `yaml:"spawn_interval" toml:"spawn_interval"` // Seconds between spawns
}

// Interval returns SpawnInterval as a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.SpawnInterval * float64(time.Second))
}

// DifficultyTable maps each level to its settings.
// Treat it as immutable once loaded; SettingsFor hands out copies.
type DifficultyTable map[Level]Settings

// SettingsFor returns the settings for lvl.
func (t DifficultyTable) SettingsFor(lvl Level) (Settings, error) {
	if !lvl.Valid() {
		return Settings{}, fmt.Errorf("%w: %q", ErrInvalidDifficulty, string(lvl))
	}
	s, ok := t[lvl]
	if !ok {
		return Settings{}, fmt.Errorf("config: no settings for difficulty %q", lvl)
	}
	return s, nil
}

// Validate checks that every level is present with positive values.
func (t DifficultyTable) Validate() error {
	for lvl := range t {
		if !lvl.Valid() {
			return fmt.Errorf("config: %w: %q", ErrInvalidDifficulty, string(lvl))
		}
	}
	for _, lvl := range Levels() {
		s, ok := t[lvl]
		if !ok {
			return fmt.Errorf("config: difficulty %q missing", lvl)
		}
		if s.FallSpeed <= 0 {
			return fmt.Errorf("config: difficulty %q: fall_speed must be positive", lvl)
		}
		if s.SpawnInterval <= 0 {
			return fmt.Errorf("config: difficulty %q: spawn_interval must be positive", lvl)
		}
	}
	return nil
}
