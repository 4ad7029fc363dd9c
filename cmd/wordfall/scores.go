package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores and recent runs",
	Long: `Display the best WPM for every difficulty. With --level, also list
the fastest recorded runs for that difficulty.

Examples:
  wordfall scores
  wordfall scores --level hard
  wordfall scores --level easy --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Difficulty to list runs for: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
}

func runScores(cmd *cobra.Command, args []string) {
	if err := showScores(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(w io.Writer) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	keeper, err := newKeeper(cfg, store, logger)
	if err != nil {
		return err
	}

	if flagScoresLevel == "" {
		printBests(w, keeper.Table(), store)
		return nil
	}

	lvl, err := config.ParseLevel(flagScoresLevel)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("run history unavailable: cannot open %s", flagDBPath)
	}
	runs, err := store.TopRuns(lvl, flagScoresLimit)
	if err != nil {
		return err
	}
	printRuns(w, lvl, keeper.Best(lvl), runs)
	return nil
}

// printBests prints one line per difficulty with the stored best and, if
// the history is available, the run count and average.
func printBests(w io.Writer, bests score.Table, store *storage.Store) {
	fmt.Fprintln(w, "Best Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %s\n", "Level", "Best", "Runs", "Avg WPM")
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %s\n", "-----", "----", "----", "-------")

	for _, lvl := range config.Levels() {
		runs, avg := "-", "-"
		if store != nil {
			if stats, err := store.GetLevelStats(lvl); err == nil && stats.RunsCount > 0 {
				runs = fmt.Sprintf("%d", stats.RunsCount)
				avg = fmt.Sprintf("%.1f", stats.AvgWPM)
			}
		}
		fmt.Fprintf(w, "  %-8s  %-6d  %-6s  %s\n", lvl.Title(), bests[lvl], runs, avg)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wordfall scores --level <level>' to list runs.")
}

// printRuns prints the fastest runs for one difficulty.
func printRuns(w io.Writer, lvl config.Level, best int, runs []storage.Run) {
	fmt.Fprintf(w, "Runs - %s\n", lvl.Title())
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'wordfall play --difficulty %s' to set the first score!\n", lvl)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-5s  %-5s  %-5s  %s\n", "Rank", "WPM", "Words", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-5s  %-5s  %-5s  %s\n", "----", "---", "-----", "----", "----")

	for i, r := range runs {
		secs := int(r.Elapsed.Seconds())
		mark := ""
		if r.NewRecord {
			mark = "  *"
		}
		fmt.Fprintf(w, "  %-4d  %-5d  %-5d  %02d:%02d  %s%s\n",
			i+1, r.WPM, r.WordsTyped, secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}
