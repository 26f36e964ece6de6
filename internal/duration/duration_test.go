package duration

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"3:45", 3.45, false},
		{"3.45", 3.45, false},
		{"3.45.67", 3.45, false},
		{"3:45:67", 3.45, false},
		{"125:70", 125.70, false},
		{"0:00", 0, false},
		{"-3:45", -3.45, false},
		{"abc", 0, true},
		{"3", 0, true},
		{"", 0, true},
		{"a:b", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("Parse(%q) error = %v, want ErrParse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3.45, "3:45"},
		{125.7, "125:70"},
		{0, "0:00"},
		{0.05, "0:05"},
		{7.2, "7:20"},
		{60, "60:00"},
		{10.999, "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Values already set to whole hundredths survive a format/parse cycle.
	for _, seconds := range []float64{0, 0.01, 3.45, 125.70, 9999.99} {
		text := Format(seconds)
		back, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(Format(%v)) failed: %v", seconds, err)
		}
		if math.Abs(back-seconds) > 1e-9 {
			t.Errorf("round trip %v -> %q -> %v", seconds, text, back)
		}
	}
}
