package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
)

var flagBoardLevel string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open an interactive table of recorded runs, one tab per difficulty.

Controls:
  Tab/Right  - Next difficulty
  S-Tab/Left - Previous difficulty
  Up/Down    - Scroll
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagBoardLevel, "level", "", "Difficulty tab to open first")
}

func runBoard(cmd *cobra.Command, args []string) {
	if err := board(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func board() error {
	cfg, err := loadConfig(flagBoardLevel)
	if err != nil {
		return err
	}
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store == nil {
		return fmt.Errorf("run history unavailable: cannot open %s", flagDBPath)
	}
	defer store.Close()

	keeper, err := newKeeper(cfg, store, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	level := cfg.DefaultLevel
	if !level.Valid() {
		level = config.LevelEasy
	}
	return tui.RunScoreboard(store, keeper.Table(), level, width, height)
}
