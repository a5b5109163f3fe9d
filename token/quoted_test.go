package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"":                         true,
		"PBXLegacyTarget":          false,
		"/usr/bin/make":            false,
		"$(SRCROOT)":               true,
		"<group>":                  true,
		"a b":                      true,
		"a//b":                     true,
		"a___b":                    true,
		"a__b":                     false,
		"1D60589F0D05DD5A006BFB54": false,
		"sourcecode.c.c":           false,
		"naïve":                    true,
		"x:y-z":                    true,
		"en.lproj/Main.strings":    false,
	}
	for in, want := range tests {
		if got := NeedsQuote(in); got != want {
			t.Errorf("NeedsQuote(%q) = %v want %v", in, got, want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"plain",
		`with "quotes"`,
		"back\\slash",
		"tab\tnew\nline\rret",
		"bell\a",
		"ctrl\x01",
		"naïve",
	}
	for _, in := range ins {
		for _, q := range []string{Quote(in), QuoteIfNeeded(in)} {
			toks, err := Tokenize(nil, []byte(q))
			if err != nil {
				t.Errorf("%q: %v", q, err)
				continue
			}
			if len(in) == 0 && q == "" {
				continue
			}
			if len(toks) != 1 {
				t.Errorf("%q: got %d tokens", q, len(toks))
				continue
			}
			if got := toks[0].String(); got != in {
				t.Errorf("%q: got %q want %q", q, got, in)
			}
		}
	}
}

func TestQuoteJSON(t *testing.T) {
	in := "a\"b\\c\n\x01é"
	q := QuoteJSON(in)
	if q != `"a\"b\\c\n\u0001é"` {
		t.Errorf("got %s", q)
	}
	toks, err := Tokenize(nil, []byte(q), TokenJSON())
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].String() != in {
		t.Errorf("round trip: got %q", toks[0].String())
	}
}
