package canvas

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{0.6, 1},
		{2.5, 3},
		{-0.4, 0},
		{-0.5, 0},
		{-0.6, -1},
		{-2.5, -2},
		{-2.6, -3},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		in        float64
		precision []int
		want      float64
	}{
		{1.234, nil, 1.23},
		{1.235, nil, 1.24},
		{1.2, nil, 1.2},
		{-1.235, nil, -1.24},
		{1.2345, []int{3}, 1.235},
		{1.6, []int{0}, 2},
	}
	for _, tt := range tests {
		if got := RoundFloat(tt.in, tt.precision...); got != tt.want {
			t.Errorf("RoundFloat(%v, %v) = %v, want %v", tt.in, tt.precision, got, tt.want)
		}
	}
}

// RoundFloat follows binary floating point, not decimal arithmetic:
// 1.005*100 lands just below 100.5, so the half-up rule floors it.
func TestRoundFloatBinaryEdge(t *testing.T) {
	v := 1.005
	want := float64(Round(v*100)) / 100
	if got := RoundFloat(v); got != want {
		t.Errorf("RoundFloat(1.005) = %v, want %v", got, want)
	}
	if got := RoundFloat(v); got != 1.0 {
		t.Errorf("RoundFloat(1.005) = %v, want 1.0", got)
	}
}
