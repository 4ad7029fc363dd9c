// Package config provides YAML/TOML configuration loading, the difficulty
// table and per-user paths for wordfall.
package config

import (
	"fmt"
	"unicode/utf8"
)

// Config is the complete game configuration, loaded once at startup and
// passed to the components that need it.
type Config struct {
	Field        Field           `yaml:"field" toml:"field"`
	Difficulty   DifficultyTable `yaml:"difficulty" toml:"difficulty"`
	DefaultLevel Level           `yaml:"default_level" toml:"default_level"`
	Words        WordsConfig     `yaml:"words" toml:"words"`
	Storage      StorageConfig   `yaml:"storage" toml:"storage"`
}

// Field describes play field geometry in logical units. The platform layer
// scales these to terminal cells.
type Field struct {
	Width             float64 `yaml:"width" toml:"width"`
	Height            float64 `yaml:"height" toml:"height"`
	LeftMargin        float64 `yaml:"left_margin" toml:"left_margin"`
	RightMargin       float64 `yaml:"right_margin" toml:"right_margin"`
	MinGap            float64 `yaml:"min_gap" toml:"min_gap"`
	CharWidth         float64 `yaml:"char_width" toml:"char_width"`   // Estimated width of one character
	SpawnY            float64 `yaml:"spawn_y" toml:"spawn_y"`         // Vertical start offset of new words
	LossMargin        float64 `yaml:"loss_margin" toml:"loss_margin"` // Distance of the loss threshold above the bottom
	PlacementAttempts int     `yaml:"placement_attempts" toml:"placement_attempts"`
}

// LossY returns the vertical position at which a word ends the round.
func (f Field) LossY() float64 {
	return f.Height - f.LossMargin
}

// WordWidth estimates the horizontal extent of text.
func (f Field) WordWidth(text string) float64 {
	return f.CharWidth * float64(utf8.RuneCountInString(text))
}

// Validate checks that the geometry leaves room to play.
func (f Field) Validate() error {
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("config: field size must be positive")
	case f.LeftMargin < 0 || f.RightMargin < 0 || f.MinGap < 0:
		return fmt.Errorf("config: field margins and gap must not be negative")
	case f.LeftMargin+f.RightMargin >= f.Width:
		return fmt.Errorf("config: field margins leave no room for words")
	case f.CharWidth <= 0:
		return fmt.Errorf("config: char_width must be positive")
	case f.PlacementAttempts <= 0:
		return fmt.Errorf("config: placement_attempts must be positive")
	case f.SpawnY >= f.LossY():
		return fmt.Errorf("config: spawn_y must be above the loss threshold")
	}
	return nil
}

// WordsConfig selects the vocabulary.
type WordsConfig struct {
	Path string `yaml:"path" toml:"path"` // One word per line; empty uses the built-in list
}

// High-score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// StorageConfig selects where best scores are kept.
type StorageConfig struct {
	HighScores string `yaml:"highscores" toml:"highscores"` // "file" or "sqlite"
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	if err := c.Difficulty.Validate(); err != nil {
		return err
	}
	if !c.DefaultLevel.Valid() {
		return fmt.Errorf("config: default_level: %w: %q", ErrInvalidDifficulty, string(c.DefaultLevel))
	}
	switch c.Storage.HighScores {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown highscores backend %q", c.Storage.HighScores)
	}
	return nil
}
