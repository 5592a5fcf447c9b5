package argparse

import (
	"testing"
)

func TestParseGlobalTokens(t *testing.T) {
	opts, n, err := ParseGlobalTokens([]string{
		"-boolean", "-equalarg", "-pass", "extras", "-helplevel", "3", "--",
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("consumed = %d, want 7", n)
	}
	if !opts.Boolean || !opts.EqualArg {
		t.Error("expected boolean and equalarg to be set")
	}
	if opts.Pass != "extras" {
		t.Errorf("pass = %q, want %q", opts.Pass, "extras")
	}
	if opts.HelpLevel != 3 {
		t.Errorf("helplevel = %d, want 3", opts.HelpLevel)
	}
}

func TestParseGlobalTokensAbbreviation(t *testing.T) {
	// unambiguous prefixes resolve; the first non-switch token stops the scan
	opts, n, err := ParseGlobalTokens([]string{"-bool", "-mix", "notaswitch"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("consumed = %d, want 2", n)
	}
	if !opts.Boolean || !opts.Mixed {
		t.Error("expected abbreviated switches to resolve")
	}

	// ambiguous prefix stops the scan without error
	_, n, err = ParseGlobalTokens([]string{"-e"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("consumed = %d, want 0 for ambiguous token", n)
	}
}

func TestParseGlobalTokensMissingValue(t *testing.T) {
	_, _, err := ParseGlobalTokens([]string{"-pass"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "Missing argument for -pass"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestParseGlobalTokensRejectsStructured(t *testing.T) {
	for _, sw := range []string{"-enum", "-validate"} {
		_, _, err := ParseGlobalTokens([]string{sw, "x"})
		if err == nil {
			t.Errorf("%s must be rejected in token form", sw)
		}
	}
}

func TestOptionsSignatureDistinguishesRegistries(t *testing.T) {
	a := NewOptions().WithEnum("colors", "red", "green")
	b := NewOptions().WithEnum("colors", "red", "blue")
	sigA := string(a.appendSignature(nil))
	sigB := string(b.appendSignature(nil))
	if sigA == sigB {
		t.Error("different enum contents must produce different signatures")
	}

	c := NewOptions().WithValidator("v", func(string) bool { return true })
	if string(c.appendSignature(nil)) == string(NewOptions().appendSignature(nil)) {
		t.Error("validator registration must change the signature")
	}
}

func TestOptionsSignatureFlags(t *testing.T) {
	plain := string(NewOptions().appendSignature(nil))
	exact := string(NewOptions().WithExact().appendSignature(nil))
	if plain == exact {
		t.Error("flag options must change the signature")
	}
}

func TestOptionsHelpDefaults(t *testing.T) {
	o := NewOptions()
	if got := o.helpLevel(); got != 2 {
		t.Errorf("helpLevel = %d, want 2", got)
	}
	if got := o.upvarLevel(); got != "1" {
		t.Errorf("upvarLevel = %q, want %q", got, "1")
	}
	if got := o.helpToken(); got != "-help" {
		t.Errorf("helpToken = %q, want %q", got, "-help")
	}
	if got := NewOptions().WithLong().helpToken(); got != "--help" {
		t.Errorf("long helpToken = %q, want %q", got, "--help")
	}
}
