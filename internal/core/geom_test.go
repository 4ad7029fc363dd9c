package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, from  float64
		to       int
		expected int
	}{
		{0, 800, 80, 0},
		{400, 800, 80, 40},
		{799, 800, 80, 79},
		{800, 800, 80, 79}, // clamped to last cell
		{-10, 800, 80, 0},
		{10, 0, 80, 0},
	}

	for _, tc := range tests {
		if got := Scale(tc.v, tc.from, tc.to); got != tc.expected {
			t.Errorf("Scale(%v, %v, %d) = %d, expected %d", tc.v, tc.from, tc.to, got, tc.expected)
		}
	}
}
