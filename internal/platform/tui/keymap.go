package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

// KeyMap defines the control bindings during play. Every key that is not
// bound here and carries runes is typing input.
type KeyMap struct {
	Start      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Easy, k.Medium, k.Hard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.Easy, k.Medium, k.Hard},
		{k.Screenshot, k.Quit},
	}
}

// Input is a decoded key press: either a control action or a typing
// keystroke. The zero value means the key is ignored.
type Input struct {
	Action  core.Action
	Strokes []core.Keystroke
}

// Decode translates a key message. Bound keys win over typing, so digits
// select the difficulty instead of being typed.
func (k KeyMap) Decode(msg tea.KeyMsg) Input {
	switch {
	case key.Matches(msg, k.Quit):
		return Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Start):
		return Input{Action: core.ActionStart}
	case key.Matches(msg, k.Pause):
		return Input{Action: core.ActionPause}
	case key.Matches(msg, k.Reset):
		return Input{Action: core.ActionReset}
	case key.Matches(msg, k.Screenshot):
		return Input{Action: core.ActionScreenshot}
	case key.Matches(msg, k.Easy):
		return Input{Action: core.ActionEasy}
	case key.Matches(msg, k.Medium):
		return Input{Action: core.ActionMedium}
	case key.Matches(msg, k.Hard):
		return Input{Action: core.ActionHard}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return Input{Strokes: []core.Keystroke{core.Backspace()}}
	case tea.KeySpace:
		return Input{Strokes: []core.Keystroke{core.Append(' ')}}
	case tea.KeyRunes:
		if msg.Alt {
			return Input{}
		}
		// Pasted text arrives as one message with several runes.
		return Input{Strokes: core.Keystrokes(string(msg.Runes))}
	}
	return Input{}
}
