package score

import "testing"

func TestComputeSpeed(t *testing.T) {
	tests := []struct {
		name    string
		words   int
		elapsed float64
		want    int
	}{
		{"ten words in a minute", 10, 60, 10},
		{"nothing", 0, 0, 0},
		{"no time elapsed", 5, 0, 0},
		{"negative time", 5, -3, 0},
		{"half a minute", 10, 30, 20},
		{"floors", 7, 45, 9}, // 9.33
		{"short burst", 1, 0.5, 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeSpeed(tc.words, tc.elapsed); got != tc.want {
				t.Errorf("ComputeSpeed(%d, %v) = %d, expected %d", tc.words, tc.elapsed, got, tc.want)
			}
		})
	}
}
