// wordfall is a falling-words typing game for the terminal.
//
// Usage:
//
//	wordfall play              - Play a round
//	wordfall scores [--level]  - Show best scores and recent runs
//	wordfall board             - Browse run history interactively
//	wordfall levels            - Show the difficulty table in effect
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible word sequences
//	--config <path>       - Use a specific YAML or TOML config file
//	--db <path>           - Set run history database path (default: ~/.wordfall/runs.db)
//	--scores-file <path>  - Set high-score document path (default: ~/.wordfall/highscore.yaml)
//	--log-file <path>     - Set log file path (default: ~/.wordfall/wordfall.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDBPath     string
	flagScoresFile string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfall",
	Short: "Wordfall - type the falling words before they land",
	Long: `Wordfall is a terminal typing game. Words fall down the screen;
type one out to clear it. The round ends when a word reaches the bottom,
and your speed in words per minute is compared with the best for the
chosen difficulty.

Available commands:
  play     - Play a round
  scores   - Show best scores and recent runs
  board    - Browse run history interactively
  levels   - Show the difficulty table in effect

Examples:
  wordfall play
  wordfall play --difficulty hard
  wordfall scores --level medium
  wordfall board`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DBPath(), "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", config.HighScorePath(), "Path to high-score document")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", config.LogPath(), "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(levelsCmd)
}
