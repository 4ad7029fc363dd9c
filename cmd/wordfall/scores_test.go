package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/storage"
)

func TestPrintBestsWithoutHistory(t *testing.T) {
	var buf bytes.Buffer
	bests := score.Table{config.LevelEasy: 42, config.LevelMedium: 0, config.LevelHard: 7}

	printBests(&buf, bests, nil)
	out := buf.String()

	for _, want := range []string{"Easy", "42", "Medium", "Hard", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRuns(t *testing.T) {
	var buf bytes.Buffer
	runs := []storage.Run{
		{Level: config.LevelHard, WPM: 55, WordsTyped: 30, Elapsed: 95 * time.Second, NewRecord: true,
			CreatedAt: time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)},
		{Level: config.LevelHard, WPM: 40, WordsTyped: 20, Elapsed: 30 * time.Second},
	}

	printRuns(&buf, config.LevelHard, 55, runs)
	out := buf.String()

	for _, want := range []string{"Runs - Hard", "01:35", "2024-03-01 18:30", "*", "Best: 55"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, config.LevelEasy, 0, nil)
	if !strings.Contains(buf.String(), "No runs recorded yet") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
