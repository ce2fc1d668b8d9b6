package nmea

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tables := []struct {
		in       string
		expected []string
	}{
		{"$GNGLL,4024.98,N,00340.22,W,211041.00,A,A*66",
			[]string{"GNGLL", "4024.98", "N", "00340.22", "W", "211041.00", "A", "A"}},
		{"GNVTG,54.7,T,,M,0.027,N,0.050,K,D*20",
			[]string{"GNVTG", "54.7", "T", "", "M", "0.027", "N", "0.050", "K", "D"}},
		// No separator at all: the whole input is one token.
		{"GPZDA", []string{"GPZDA"}},
		{"", []string{""}},
		// Trailing and consecutive commas produce empty tokens, never fewer
		// tokens.
		{"$GPGSA,A,1,,,", []string{"GPGSA", "A", "1", "", "", ""}},
	}

	for _, table := range tables {
		out := Tokenize(table.in)
		if !reflect.DeepEqual(out, table.expected) {
			t.Errorf("%q expected: %q, got: %q", table.in, table.expected, out)
		}
	}
}

func TestTokenize_NeverEmpty(t *testing.T) {
	for _, in := range []string{"", "*", "$", "$*00", ",", "***"} {
		if got := Tokenize(in); len(got) == 0 {
			t.Errorf("%q: expected at least one token", in)
		}
	}
}

func TestTokenize_ExcludesChecksum(t *testing.T) {
	out := Tokenize("$GPRMC,123519,A*07")
	if len(out) != 3 || out[2] != "A" {
		t.Fatalf("expected checksum excluded, got %q", out)
	}
}
