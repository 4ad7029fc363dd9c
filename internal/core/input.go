package core

// Action represents a control intent, abstracted from physical key presses.
// Typing keystrokes travel separately as Keystroke values.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter - start the round
	ActionPause             // Esc - pause/resume
	ActionReset             // Ctrl+R - back to a fresh, not-started round
	ActionQuit              // Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
	ActionEasy              // 1
	ActionMedium            // 2
	ActionHard              // 3
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// KeyKind tags a Keystroke.
type KeyKind uint8

const (
	KeyAppend    KeyKind = iota + 1 // Append Rune to the typed input
	KeyBackspace                    // Drop the last typed rune
)

// Keystroke is a single typing edit: either an appended rune or a backspace.
type Keystroke struct {
	Kind KeyKind
	Rune rune // Only meaningful for KeyAppend
}

// Append returns a keystroke that appends r.
func Append(r rune) Keystroke {
	return Keystroke{Kind: KeyAppend, Rune: r}
}

// Backspace returns a keystroke that deletes the last rune.
func Backspace() Keystroke {
	return Keystroke{Kind: KeyBackspace}
}

// Apply returns input with the edit applied. Backspace on empty input is a
// no-op.
func (k Keystroke) Apply(input string) string {
	switch k.Kind {
	case KeyAppend:
		return input + string(k.Rune)
	case KeyBackspace:
		runes := []rune(input)
		if len(runes) == 0 {
			return input
		}
		return string(runes[:len(runes)-1])
	default:
		return input
	}
}

// Keystrokes converts typed runes into append keystrokes.
func Keystrokes(s string) []Keystroke {
	out := make([]Keystroke, 0, len(s))
	for _, r := range s {
		out = append(out, Append(r))
	}
	return out
}
