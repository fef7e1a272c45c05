package types

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEpochMillis(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
	}{
		{"nil", nil, 0},
		{"int", 500, 500},
		{"int64", int64(1700000000000), 1700000000000},
		{"float64", float64(1700000000000), 1700000000000},
		{"numeric string", "1700000000000", 1700000000000},
		{"float string", "150.9", 150},
		{"json number", json.Number("42"), 42},
		{"garbage string", "not-a-number", 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		if got := EpochMillis(tc.in); got != tc.want {
			t.Errorf("%s: EpochMillis(%v) = %d, want %d", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestCoordinate(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 12.9716, 12.9716, true},
		{"numeric string", "77.5946", 77.5946, true},
		{"padded string", "  1.5 ", 1.5, true},
		{"int", 7, 7.0, true},
		{"json number", json.Number("-0.25"), -0.25, true},
		{"garbage string", "not-a-number", 0, false},
		{"nil", nil, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"inf string", "+Inf", 0, false},
	}

	for _, tc := range cases {
		got, ok := Coordinate(tc.in)
		if ok != tc.ok {
			t.Errorf("%s: Coordinate(%v) ok = %v, want %v", tc.name, tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: Coordinate(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}
