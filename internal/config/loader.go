package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// localConfigPath is checked after the user config.
const localConfigPath = "configs/wordfall.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.wordfall/config.yaml -> ./configs/wordfall.yaml -> embedded default.
// Each file is decoded over the defaults, so partial files are fine.
// A custom path that is missing or invalid is an error; the other
// locations are skipped when unusable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		path, err := ExpandHome(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot expand %s: %w", customPath, err)
		}
		cfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, path := range []string{UserConfigPath(), localConfigPath} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded defaults")
}

// loadFile reads and decodes a YAML or TOML file over the defaults.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document over the defaults. ext selects
// the format: ".toml" for TOML, anything else for YAML.
func Parse(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	if strings.EqualFold(ext, ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return finish(cfg, "document")
}

// finish normalizes and validates a decoded config.
func finish(cfg Config, source string) (Config, error) {
	lvl, err := ParseLevel(string(cfg.DefaultLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: default_level: %w", source, err)
	}
	cfg.DefaultLevel = lvl
	cfg.Storage.HighScores = strings.ToLower(strings.TrimSpace(cfg.Storage.HighScores))

	// Keys may arrive capitalized ("Easy"). Fold them onto the canonical
	// levels; a spelled-out variant overrides the default it merged with.
	table := make(DifficultyTable, len(cfg.Difficulty))
	var folded []Level
	for name, s := range cfg.Difficulty {
		if name.Valid() {
			table[name] = s
			continue
		}
		folded = append(folded, name)
	}
	for _, name := range folded {
		lvl, err := ParseLevel(string(name))
		if err != nil {
			return Config{}, fmt.Errorf("%s: difficulty table: %w", source, err)
		}
		table[lvl] = cfg.Difficulty[name]
	}
	cfg.Difficulty = table

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
