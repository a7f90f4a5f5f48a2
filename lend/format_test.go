package lend

import (
	"errors"
	"testing"
)

func TestToHumanTruncatesAtFourPlaces(t *testing.T) {
	cases := []struct {
		raw      string
		decimals int
		want     string
	}{
		// The fifth fractional digit is dropped, never rounded up.
		{"1234560000000000000", 18, "1.2345"},
		{"1999999999999999999", 18, "1.9999"},
		{"0", 18, "0.0000"},
		{"1000000000000000000", 18, "1.0000"},
		{"1234560", 6, "1.2345"},
		{"2500000", 6, "2.5000"},
		{"5", 0, "5.0000"},
	}
	for _, tc := range cases {
		got, err := ToHuman(tc.raw, tc.decimals)
		if err != nil {
			t.Fatalf("ToHuman(%s, %d): %v", tc.raw, tc.decimals, err)
		}
		if got != tc.want {
			t.Fatalf("ToHuman(%s, %d) = %s, want %s", tc.raw, tc.decimals, got, tc.want)
		}
	}
}

func TestToHumanRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		raw      string
		decimals int
	}{
		{"-1", 18},
		{"abc", 18},
		{"1.5", 18},
		{"", 18},
		{"100", -1},
	}
	for _, tc := range cases {
		_, err := ToHuman(tc.raw, tc.decimals)
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("ToHuman(%q, %d): expected FormatError, got %v", tc.raw, tc.decimals, err)
		}
	}
}

func TestToRaw(t *testing.T) {
	cases := []struct {
		human    string
		decimals int
		want     string
	}{
		{"1.2345", 18, "1234500000000000000"},
		{"2.5", 6, "2500000"},
		{"0", 18, "0"},
		{"0.0000001", 6, "0"},
	}
	for _, tc := range cases {
		got, err := ToRaw(tc.human, tc.decimals)
		if err != nil {
			t.Fatalf("ToRaw(%s, %d): %v", tc.human, tc.decimals, err)
		}
		if got != tc.want {
			t.Fatalf("ToRaw(%s, %d) = %s, want %s", tc.human, tc.decimals, got, tc.want)
		}
	}
}

func TestToRawRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"-1", "abc", ""} {
		_, err := ToRaw(input, 18)
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("ToRaw(%q): expected FormatError, got %v", input, err)
		}
	}
}

// Converting a raw balance to its display form and back reproduces the raw
// value up to the four-decimal display truncation.
func TestRoundTripWithinDisplayPrecision(t *testing.T) {
	cases := []struct {
		raw      string
		decimals int
		want     string
	}{
		{"1234500000000000000", 18, "1234500000000000000"},
		{"1234560000000000000", 18, "1234500000000000000"},
		{"2500000", 6, "2500000"},
		{"2500001", 6, "2500000"},
		{"0", 18, "0"},
	}
	for _, tc := range cases {
		human, err := ToHuman(tc.raw, tc.decimals)
		if err != nil {
			t.Fatalf("ToHuman(%s): %v", tc.raw, err)
		}
		back, err := ToRaw(human, tc.decimals)
		if err != nil {
			t.Fatalf("ToRaw(%s): %v", human, err)
		}
		if back != tc.want {
			t.Fatalf("round trip of %s: got %s, want %s", tc.raw, back, tc.want)
		}
	}
}
