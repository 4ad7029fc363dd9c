package config

import (
	_ "embed"
)

//go:embed defaults/wordfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Field: Field{
			Width:             800,
			Height:            600,
			LeftMargin:        40,
			RightMargin:       40,
			MinGap:            60,
			CharWidth:         14,
			SpawnY:            70,
			LossMargin:        80,
			PlacementAttempts: 20,
		},
		Difficulty: DifficultyTable{
			LevelEasy:   {FallSpeed: 1.5, SpawnInterval: 2.5},
			LevelMedium: {FallSpeed: 2.5, SpawnInterval: 1.8},
			LevelHard:   {FallSpeed: 3.5, SpawnInterval: 1.2},
		},
		DefaultLevel: LevelEasy,
		Storage: StorageConfig{
			HighScores: BackendFile,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
