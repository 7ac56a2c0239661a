package lang

import "testing"

func TestNormalizeKnownCodes(t *testing.T) {
	cases := []struct {
		in   string
		want Code
	}{
		{"en", "en"},
		{"hi", "hi"},
		{"TE", "te"},
		{"  ta  ", "ta"},
		{"Kn", "kn"},
		{"ml", "ml"},
		{"pa", "pa"},
		{"bho", "bho"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeFallsBackToBase(t *testing.T) {
	for _, in := range []string{"", "  ", "fr", "en-US", "hindi", "123", "???"} {
		if got := Normalize(in); got != Base {
			t.Errorf("Normalize(%q): want=%q got=%q", in, Base, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"", "en", "HI", " bho ", "zz", "en-US"} {
		once := Normalize(in)
		twice := Normalize(string(once))
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeTotalOverSupportedSet(t *testing.T) {
	supported := make(map[Code]bool)
	for _, c := range Codes() {
		supported[c] = true
	}
	for _, in := range []string{"", "en", "te", "xx", "Deutsch", "TA"} {
		if got := Normalize(in); !supported[got] {
			t.Errorf("Normalize(%q) returned %q, outside the supported set", in, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("te"); got != "Telugu" {
		t.Errorf("DisplayName(te): want=%q got=%q", "Telugu", got)
	}
	if got := DisplayName("zz"); got != "English" {
		t.Errorf("DisplayName(zz): want=%q got=%q", "English", got)
	}
}
