package config

import (
	"os"
	"path/filepath"
	"strings"
)

// dirName is the per-user data directory under $HOME.
const dirName = ".wordfall"

// DataDir returns ~/.wordfall, or ./.wordfall if the home directory is
// unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// UserConfigPath returns the per-user config file path.
func UserConfigPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// HighScorePath returns the default high-score document path.
func HighScorePath() string {
	return filepath.Join(DataDir(), "highscore.yaml")
}

// DBPath returns the default run history database path.
func DBPath() string {
	return filepath.Join(DataDir(), "runs.db")
}

// LogPath returns the default log file path.
func LogPath() string {
	return filepath.Join(DataDir(), "wordfall.log")
}

// ScreenshotDir returns the directory for text screenshots.
func ScreenshotDir() string {
	return filepath.Join(DataDir(), "screenshots")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
