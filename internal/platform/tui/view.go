package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/game"
)

// Layout rows around the field.
const (
	hudRow      = 0
	fieldTop    = 2
	chromeRows  = 4 // HUD, two separators, input line
	minScreenW  = 30
	minScreenH  = 10
	flashFrames = 8
)

// frame is what the view needs besides the session.
type frame struct {
	flash  int    // Frames left of the word-completed highlight
	status string // One-line notice, e.g. a saved screenshot path
}

// drawSession renders the whole play screen into scr.
func drawSession(scr *core.Screen, s *game.Session, f frame) {
	scr.Clear()
	w, h := scr.Width(), scr.Height()
	if w < minScreenW || h < minScreenH {
		scr.DrawTextCentered(h/2, "terminal too small", core.ColorRed)
		return
	}

	drawHUD(scr, s)

	sepColor := core.ColorGray
	if f.flash > 0 {
		sepColor = core.ColorBrightGreen
	}
	scr.DrawHLine(0, fieldTop-1, w, '─', sepColor)
	scr.DrawHLine(0, h-2, w, '─', sepColor)

	drawField(scr, s)
	drawInput(scr, s, f)

	switch {
	case s.GameOver():
		drawGameOver(scr, s)
	case !s.Started():
		drawPanel(scr, core.ColorCyan,
			"W O R D F A L L",
			"",
			"Type the falling words before they land.",
			fmt.Sprintf("Difficulty: %s  (1/2/3 to change)", s.Level().Title()),
			"",
			"Press Enter to start",
		)
	case s.Paused():
		drawPanel(scr, core.ColorYellow, "PAUSED", "", "Esc to resume")
	}
}

func drawHUD(scr *core.Screen, s *game.Session) {
	st := s.State()
	x := scr.DrawTextColor(1, hudRow, "WORDFALL", core.ColorBrightWhite)
	x = scr.DrawTextColor(x+2, hudRow, s.Level().Title(), levelColor(s))
	x = scr.DrawTextColor(x+2, hudRow, formatElapsed(s.Elapsed()), core.ColorWhite)
	x = scr.DrawTextColor(x+2, hudRow, fmt.Sprintf("WPM %d", st.Score), core.ColorCyan)
	x = scr.DrawTextColor(x+2, hudRow, fmt.Sprintf("Words %d", st.Words), core.ColorWhite)
	scr.DrawTextColor(x+2, hudRow, fmt.Sprintf("Best %d", s.Best()), core.ColorYellow)
}

func levelColor(s *game.Session) core.Color {
	switch s.Level() {
	case config.LevelHard:
		return core.ColorRed
	case config.LevelMedium:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// fieldRows is the number of terminal rows the play field maps onto.
func fieldRows(scr *core.Screen) int {
	return scr.Height() - chromeRows
}

// toCell maps a field position to a screen cell.
func toCell(scr *core.Screen, field fieldSize, x, y float64) (int, int) {
	col := core.Scale(x, field.w, scr.Width())
	row := fieldTop + core.Scale(y, field.h, fieldRows(scr))
	return col, row
}

type fieldSize struct{ w, h float64 }

func drawField(scr *core.Screen, s *game.Session) {
	field := s.Field()
	size := fieldSize{field.Width, field.Height}

	_, lossRow := toCell(scr, size, 0, field.LossY())
	scr.DrawHLine(0, lossRow, scr.Width(), '┄', core.ColorRed)

	for _, v := range s.Words() {
		col, row := toCell(scr, size, v.X, v.Y)
		if !v.Active {
			scr.DrawTextColor(col, row, v.Text, core.ColorWhite)
			continue
		}
		runes := []rune(v.Text)
		typed := min(v.Typed, len(runes))
		next := scr.DrawTextColor(col, row, string(runes[:typed]), core.ColorBrightGreen)
		scr.DrawTextColor(next, row, string(runes[typed:]), core.ColorBrightYellow)
	}
}

func drawInput(scr *core.Screen, s *game.Session, f frame) {
	row := scr.Height() - 1
	x := scr.DrawTextColor(1, row, "> ", core.ColorGray)
	x = scr.DrawTextColor(x, row, s.Input(), core.ColorCyan)
	if s.Active() && !s.Paused() {
		scr.SetCell(x, row, '_', core.ColorGray)
	}
	if f.status != "" {
		scr.DrawTextColor(max(scr.Width()-len(f.status)-1, x+2), row, f.status, core.ColorGray)
	}
}

func drawGameOver(scr *core.Screen, s *game.Session) {
	res := s.Result()
	if res == nil {
		return
	}
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("WPM:   %d", res.WPM),
		fmt.Sprintf("Words: %d", res.WordsTyped),
		fmt.Sprintf("Time:  %s", formatElapsed(res.Elapsed)),
		fmt.Sprintf("Best (%s): %d", res.Level.Title(), res.Best),
	}
	if res.NewRecord {
		lines = append(lines, "", "NEW HIGH SCORE!")
	}
	if res.PersistErr != nil {
		lines = append(lines, "", "warning: best score not saved")
	}
	lines = append(lines, "", "Ctrl+R to play again")
	drawPanel(scr, core.ColorRed, lines...)
}

// drawPanel draws a centered box with the given lines.
func drawPanel(scr *core.Screen, border core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+6, scr.Width())
	boxH := min(len(lines)+2, scr.Height())
	x := (scr.Width() - boxW) / 2
	y := (scr.Height() - boxH) / 2

	scr.DrawBox(x, y, boxW, boxH, border)
	for i, l := range lines {
		c := core.ColorBrightWhite
		switch {
		case i == 0:
			c = border
		case strings.HasPrefix(l, "NEW HIGH"):
			c = core.ColorBrightYellow
		case strings.HasPrefix(l, "warning"):
			c = core.ColorOrange
		}
		scr.DrawTextCentered(y+1+i, l, c)
	}
}

// formatElapsed renders d as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
