package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

func TestDecodeActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"ctrl+r resets", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionReset},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"1 is easy", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, core.ActionEasy},
		{"2 is medium", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}, core.ActionMedium},
		{"3 is hard", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}, core.ActionHard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := km.Decode(tc.msg)
			if in.Action != tc.want {
				t.Errorf("Decode(%q).Action = %v, expected %v", tc.msg.String(), in.Action, tc.want)
			}
			if len(in.Strokes) != 0 {
				t.Errorf("control key should not produce keystrokes, got %v", in.Strokes)
			}
		})
	}
}

func TestDecodeTyping(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Keystroke
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, []core.Keystroke{core.Append('a')}},
		{"q is typed, not quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, []core.Keystroke{core.Append('q')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ox")}, []core.Keystroke{core.Append('o'), core.Append('x')}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []core.Keystroke{core.Backspace()}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []core.Keystroke{core.Append(' ')}},
		{"alt chord ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, nil},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyUp}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := km.Decode(tc.msg)
			if in.Action != core.ActionNone {
				t.Errorf("typing key decoded to action %v", in.Action)
			}
			if len(in.Strokes) != len(tc.want) {
				t.Fatalf("Decode(%q) = %v, expected %v", tc.msg.String(), in.Strokes, tc.want)
			}
			for i := range tc.want {
				if in.Strokes[i] != tc.want[i] {
					t.Errorf("stroke %d = %v, expected %v", i, in.Strokes[i], tc.want[i])
				}
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should list bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", total)
	}
}
