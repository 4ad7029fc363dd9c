package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table in effect",
	Long: `Shows fall speed and spawn interval for every difficulty after the
config search order has been applied, plus the play field geometry.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty levels:")
	fmt.Println()
	fmt.Printf("  %-8s  %-12s  %s\n", "Level", "Fall speed", "Spawn every")
	fmt.Printf("  %-8s  %-12s  %s\n", "-----", "----------", "-----------")

	for _, lvl := range config.Levels() {
		st := cfg.Difficulty[lvl]
		marker := ""
		if lvl == cfg.DefaultLevel {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %-12s  %s%s\n", lvl.Title(),
			fmt.Sprintf("%.1f/frame", st.FallSpeed), st.Interval(), marker)
	}

	f := cfg.Field
	fmt.Println()
	fmt.Printf("Field: %.0fx%.0f units, words enter at y=%.0f, lost at y=%.0f\n",
		f.Width, f.Height, f.SpawnY, f.LossY())
	fmt.Println()
	fmt.Println("Run 'wordfall play --difficulty <level>' to play.")
}
