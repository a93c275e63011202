package plotdata

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	cases := map[string]float64{
		"0.5":        0.5,
		"  0.25":     0.25,
		"1e3":        1000,
		"1e":         1,
		"-.5":        -0.5,
		"0.5abc":     0.5,
		"Infinity":   math.Inf(1),
		"+Infinity":  math.Inf(1),
		"-Infinity":  math.Inf(-1),
		"1e400":      math.Inf(1),
		"\u00a03":    3,
		"\ufeff0.5":  0.5,
		"\u30001e1":  10,
		"\u2028\t-2": -2,
	}
	for in, want := range cases {
		if got := ParseFloat(in); got != want {
			t.Fatalf("ParseFloat(%q): expected %v, got %v", in, want, got)
		}
	}
	for _, in := range []string{"NaN", "abc", ".", "", "inf", "\u00853"} {
		if got := ParseFloat(in); !math.IsNaN(got) {
			t.Fatalf("ParseFloat(%q): expected NaN, got %v", in, got)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.50000"},
		{0.123456, "0.12346"},
		{0, "0.00000"},
		{math.Copysign(0, -1), "0.00000"},
		{-0.000001, "-0.00000"},
		{1, "1.00000"},
		{-2.5, "-2.50000"},
		{0.015625, "0.01563"},
		{-0.015625, "-0.01563"},
		{123.456789, "123.45679"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{1e21, "1e+21"},
		{-1.5e22, "-1.5e+22"},
	}
	for _, tc := range cases {
		if got := FormatFixed(tc.in, 5); got != tc.want {
			t.Fatalf("FormatFixed(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
	if got := FormatFixed(2.5, 0); got != "3" {
		t.Fatalf("FormatFixed(2.5, 0): expected 3, got %q", got)
	}
}

func TestToNumber(t *testing.T) {
	if v, ok := toNumber(" 0.75 "); !ok || v != 0.75 {
		t.Fatalf("expected 0.75, got %v ok=%v", v, ok)
	}
	if v, ok := toNumber("\u00a00.25\ufeff"); !ok || v != 0.25 {
		t.Fatalf("expected unicode spaces trimmed, got %v ok=%v", v, ok)
	}
	if _, ok := toNumber("0.75x"); ok {
		t.Fatal("expected trailing text to be rejected")
	}
	if v, ok := toNumber(""); !ok || v != 0 {
		t.Fatalf("expected empty string to convert to 0, got %v ok=%v", v, ok)
	}
}
