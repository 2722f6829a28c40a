package composition

import (
	"math"
	"testing"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in        string
		want      float64
		wantTrace bool
	}{
		{"6.53", 6.53, false},
		{"0,19", 0.19, false},
		{"<0.001", 0.001, true},
		{"< 0,003", 0.003, true},
		{"19", 0.19, false},
		{"653", 6.53, false},
		{"6.5.3", 6.53, false},
		{"1 23", 1.23, false},
		{"45%", 4.5, false},
		{"0.05%", 0.05, false},
		{"250.0", 25, false},
		{"2500.0", 2.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeNumber(tt.in)
			if !ok {
				t.Fatalf("NormalizeNumber(%q) not ok", tt.in)
			}
			if !got.HasMagnitude {
				t.Fatalf("NormalizeNumber(%q) has no magnitude", tt.in)
			}
			if math.Abs(got.Magnitude-tt.want) > 1e-9 {
				t.Errorf("NormalizeNumber(%q) = %v, want %v", tt.in, got.Magnitude, tt.want)
			}
			if got.Trace != tt.wantTrace {
				t.Errorf("NormalizeNumber(%q) trace = %v, want %v", tt.in, got.Trace, tt.wantTrace)
			}
		})
	}
}

func TestNormalizeNumberTraceWithoutMagnitude(t *testing.T) {
	got, ok := NormalizeNumber("<")
	if !ok {
		t.Fatal("NormalizeNumber(\"<\") not ok, want trace reading")
	}
	if !got.Trace || got.HasMagnitude {
		t.Errorf("NormalizeNumber(\"<\") = %+v, want trace without magnitude", got)
	}
}

func TestNormalizeNumberUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "-", "wt.%"} {
		if got, ok := NormalizeNumber(in); ok {
			t.Errorf("NormalizeNumber(%q) = %+v, want not ok", in, got)
		}
	}
}

func TestNormalizeNumberIdempotent(t *testing.T) {
	// A value that already normalized must survive a second pass intact.
	for _, in := range []string{"6.53", "0.19", "0,19", "19"} {
		first, ok := NormalizeNumber(in)
		if !ok {
			t.Fatalf("NormalizeNumber(%q) not ok", in)
		}
		second, ok := NormalizeNumber(first.String())
		if !ok {
			t.Fatalf("NormalizeNumber(%q) second pass not ok", first.String())
		}
		if math.Abs(first.Magnitude-second.Magnitude) > 1e-6 {
			t.Errorf("normalize not idempotent for %q: %v then %v", in, first.Magnitude, second.Magnitude)
		}
	}
}

func TestReadingString(t *testing.T) {
	tests := []struct {
		r    Reading
		want string
	}{
		{Reading{Magnitude: 6.53, HasMagnitude: true}, "6.53"},
		{Reading{Trace: true, Magnitude: 0.001, HasMagnitude: true}, "<0.001"},
		{Reading{Trace: true}, "<"},
		{Reading{}, ""},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Reading%+v.String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
