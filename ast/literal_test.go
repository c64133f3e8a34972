package ast

import (
	"math"
	"testing"
)

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		in   string
		fn   func(string) (int64, error)
		want int64
		ok   bool
	}{
		{"0xFF", TryFromHexadecimal, 255, true},
		{"0xdead_beef", TryFromHexadecimal, 0xdeadbeef, true},
		{"0o755", TryFromOctal, 0o755, true},
		{"0b101", TryFromBinary, 5, true},
		{"0b1_0_1", TryFromBinary, 5, true},
		{"1_000", TryFromDecimal, 1000, true},
		{"-17", TryFromDecimal, -17, true},
		{"+99", TryFromDecimal, 99, true},
		{"9223372036854775807", TryFromDecimal, math.MaxInt64, true},
		{"9223372036854775808", TryFromDecimal, 0, false}, // overflow
		{"0xZZ", TryFromHexadecimal, 0, false},
	}
	for _, tc := range tests {
		got, err := tc.fn(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("%q: got %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: expected an error", tc.in)
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.14", 3.14},
		{"-0.01", -0.01},
		{"5e22", 5e22},
		{"6.26e-34", 6.26e-34},
		{"9_224.617", 9224.617},
		{"inf", math.Inf(1)},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	}
	for _, tc := range tests {
		got, err := TryFromFloat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("%q: got %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	for _, in := range []string{"nan", "-nan"} {
		got, err := TryFromFloat(in)
		if err != nil || !math.IsNaN(got) {
			t.Errorf("%q: got %v, %v; want NaN", in, got, err)
		}
	}
}

func TestUnquoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`'plain'`, "plain"},
		{`'no \n escapes'`, `no \n escapes`},
		{"'''multi\nline'''", "multi\nline"},
		{"'''\nleading newline dropped'''", "leading newline dropped"},
	}
	for _, tc := range tests {
		got, err := UnquoteLiteral(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("UnquoteLiteral(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := UnquoteLiteral(`'open`); err == nil {
		t.Errorf("unterminated literal should error")
	}
}

func TestUnquoteBasic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"plain"`, "plain"},
		{`"tab\there"`, "tab\there"},
		{`"quote \" slash \\"`, `quote " slash \`},
		{`"é"`, "é"},
		{`"\U0001F600"`, "😀"},
		{"\"\"\"\nfirst line\"\"\"", "first line"},
		{"\"\"\"join \\\n  these\"\"\"", "join these"},
	}
	for _, tc := range tests {
		got, err := UnquoteBasic(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("UnquoteBasic(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
	for _, in := range []string{`"open`, `"bad \q"`, `"short \u00"`} {
		if _, err := UnquoteBasic(in); err == nil {
			t.Errorf("UnquoteBasic(%q) should error", in)
		}
	}
}
