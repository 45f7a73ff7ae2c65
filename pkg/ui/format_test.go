package ui

import (
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer gets padded decimals", 2, "2.000"},
		{"rounds to three places", 1.0 / 3.0, "0.333"},
		{"negative", -48.5, "-48.500"},
		{"zero", 0, "0.000"},
		{"NaN renders empty", math.NaN(), ""},
		{"+Inf renders empty", math.Inf(1), ""},
		{"-Inf renders empty", math.Inf(-1), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	if v, err := ParseValue(" 3.5 "); err != nil || v != 3.5 {
		t.Errorf("ParseValue(\" 3.5 \") = %v, %v", v, err)
	}
	if v, err := ParseValue("-2"); err != nil || v != -2 {
		t.Errorf("ParseValue(\"-2\") = %v, %v", v, err)
	}

	for _, bad := range []string{"", "abc", "3x", "NaN", "Inf", "-Inf", "1.2.3"} {
		if _, err := ParseValue(bad); err == nil {
			t.Errorf("ParseValue(%q) accepted invalid input", bad)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("PX → REM", 20); got != "PX → REM" {
		t.Errorf("short string was modified: %q", got)
	}
	if got := Truncate("container width in px", 10); len(got) == 0 || got == "container width in px" {
		t.Errorf("long string not truncated: %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("zero width = %q, want empty", got)
	}
}
