package composition

import "testing"

func TestDetectUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Element wt.% Requirement", "wt.%"},
		{"composition in wt%", "wt%"},
		{"values in %", "%"},
		{"no unit here", DefaultUnit},
		{"", DefaultUnit},
	}
	for _, tt := range tests {
		if got := DetectUnit(tt.in); got != tt.want {
			t.Errorf("DetectUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlausibleValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  bool
	}{
		{6.53, "wt.%", true},
		{0, "wt.%", true},
		{100, "wt.%", true},
		{100.5, "wt.%", false},
		{-0.05, "wt.%", true}, // sign noise tolerance
		{-6.53, "wt.%", false},
		{500, "ppm", true},
		{-1, "ppm", false},
	}
	for _, tt := range tests {
		if got := PlausibleValue(tt.value, tt.unit); got != tt.want {
			t.Errorf("PlausibleValue(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}
