package coerce

import (
	"math"
	"testing"
)

func TestIsBoolean(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"false": true,
		"True":  false,
		"FALSE": false,
		"1":     false,
		"":      false,
		" true": false,
	}
	for input, want := range cases {
		if got := IsBoolean(input); got != want {
			t.Fatalf("IsBoolean(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsNumber(t *testing.T) {
	cases := map[string]bool{
		"0":      true,
		"42":     true,
		"-3.5":   true,
		"+1":     true,
		".5":     true,
		"1e3":    true,
		"2.5E-2": true,
		"":       false,
		"abc":    false,
		"1px":    false,
		"0x10":   false,
		"NaN":    false,
		"Inf":    false,
		"1e400":  false,
		" 1":     false,
		"1,5":    false,
	}
	for input, want := range cases {
		if got := IsNumber(input); got != want {
			t.Fatalf("IsNumber(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestAsNumber(t *testing.T) {
	if got := AsNumber("12.25"); got != 12.25 {
		t.Fatalf("expected 12.25, got %v", got)
	}
	if got := AsNumber("twelve"); !math.IsNaN(got) {
		t.Fatalf("expected NaN for non-numeric input, got %v", got)
	}
}

func TestAsBoolean(t *testing.T) {
	if !AsBoolean("true") {
		t.Fatalf("expected true")
	}
	for _, input := range []string{"false", "yes", "1", "True"} {
		if AsBoolean(input) {
			t.Fatalf("expected %q to coerce to false", input)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type named string

func (n named) String() string { return "named:" + string(n) }

func TestText(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"label", "label"},
		{true, "true"},
		{float64(2), "2"},
		{int(7), "7"},
		{int64(-9), "-9"},
		{uint(4), "4"},
		{named("x"), "named:x"},
		{[]int{1}, "[1]"},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Fatalf("Text(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeJSON_KeepsMarkup(t *testing.T) {
	cases := map[string]struct {
		in   any
		want string
	}{
		"string":  {in: "A & <b>", want: `"A & <b>"`},
		"quotes":  {in: `say "hi"`, want: `"say \"hi\""`},
		"object":  {in: map[string]any{"tag": "<P>"}, want: `{"tag":"<P>"}`},
		"boolean": {in: true, want: "true"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := EncodeJSON(tc.in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("EncodeJSON(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
