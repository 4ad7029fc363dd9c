package core

import "testing"

func TestKeystrokeApply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		key      Keystroke
		expected string
	}{
		{"append to empty", "", Append('c'), "c"},
		{"append", "ca", Append('t'), "cat"},
		{"backspace", "cat", Backspace(), "ca"},
		{"backspace on empty", "", Backspace(), ""},
		{"backspace multibyte", "café", Backspace(), "caf"},
		{"zero value", "cat", Keystroke{}, "cat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.Apply(tc.input); got != tc.expected {
				t.Errorf("Apply(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestKeystrokes(t *testing.T) {
	keys := Keystrokes("car")
	if len(keys) != 3 {
		t.Fatalf("expected 3 keystrokes, got %d", len(keys))
	}
	for i, r := range "car" {
		if keys[i].Kind != KeyAppend || keys[i].Rune != r {
			t.Errorf("keystroke %d = %+v, expected append %q", i, keys[i], r)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
