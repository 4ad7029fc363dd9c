package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/game"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
	"github.com/vovakirdan/wordfall/internal/words"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of wordfall.

Controls:
  Enter      - Start
  Esc        - Pause/resume
  Ctrl+R     - Reset to a fresh round
  1 / 2 / 3  - Easy / medium / hard
  Backspace  - Delete the last typed letter
  Ctrl+S     - Save a text screenshot
  Ctrl+C     - Quit

Everything else you type is matched against the falling words.

Examples:
  wordfall play
  wordfall play --difficulty hard
  wordfall play --seed 42
  wordfall play --config ./my-wordfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play wires config, words, scores and storage into a session and runs the
// TUI until the player quits.
func play() error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger()
	defer closeLog()

	vocab, err := words.Source(cfg.Words.Path)
	if err != nil {
		return fmt.Errorf("loading words: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalog, err := words.NewCatalog(vocab, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	keeper, err := newKeeper(cfg, store, logger)
	if err != nil {
		return err
	}

	session, err := game.NewSession(cfg, catalog, keeper,
		game.WithLogger(logger),
		game.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	rc.Seed = seed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	logger.Info("starting", "difficulty", cfg.DefaultLevel, "words", catalog.Len(), "seed", seed)

	if err := tui.Run(session, store, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
