package literal

import (
	"errors"
	"testing"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/regexp"
)

func translate(t *testing.T, src string) string {
	t.Helper()

	out, next, err := Translate(src, 0, NewIndex(src))
	if err != nil {
		t.Fatalf("Translate(%q): %v", src, err)
	}
	if next > len(src) {
		t.Fatalf("Translate(%q) next = %d past end", src, next)
	}

	return out
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"string(banana)", `\bbanana\b`},
		{"string(banana, caseinsensitive)", `\bbanana\b`},
		{"string(banana,CI)", `\bbanana\b`},
		{"string(banana, multicase)", `\b[bB][aA][nN][aA][nN][aA]\b`},
		{"string(a1, mc)", `\b[aA]1\b`},
		{"string()", "(?:)"},
		{"string(  , ci)", "(?:)"},
		{"string(a.b)", `^a\.b$`},
		{"string(hello, world)", `^hello, world$`},
		{"string(ab)+", "(?:ab)"},
		{"string(a)*", "a"},
		{"string(x){2}", "x"},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			if got := translate(t, tc.src); got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestTranslateNext(t *testing.T) {
	src := "string(ab)digit"
	_, next, err := Translate(src, 0, NewIndex(src))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if next != 10 {
		t.Fatalf("next = %d, want 10", next)
	}
}

func TestTranslateUnclosed(t *testing.T) {
	src := "digit string(abc"
	_, _, err := Translate(src, 6, NewIndex(src))
	if !errors.Is(err, prxerrors.ErrParse) {
		t.Fatalf("err = %v, want parse error", err)
	}

	var e *prxerrors.Error
	if !errors.As(err, &e) || e.Pos != 6 || e.Message != "unclosed string() literal" {
		t.Fatalf("unexpected error detail: %+v", e)
	}
}

func TestContext(t *testing.T) {
	cases := []struct {
		src  string
		pos  int
		want Context
	}{
		{"string(a)", 0, Standalone},
		{"string(a)|string(b)", 0, Alternation},
		{"string(a)|string(b)", 10, Alternation},
		{"string(a) string(b)", 10, Sequence},
		{"(string(a))(string(b))", 12, Sequence},
		{"(string(a)|string(b))+", 1, QuantifiedGroup},
		{"(string(a)|x)*", 1, QuantifiedGroup},
		{"(string(a))", 1, Group},
		{"(digit|(string(a)))", 8, Group},
		{"string(a)|(string(b)string(c))", 0, Alternation},
		{"string(a)|(string(b)string(c))", 11, Sequence},
		{"string(a)|string(b)string(c)", 10, Sequence},
		{"[x]string(a)", 3, Standalone},
	}

	for _, tc := range cases {
		if got := NewIndex(tc.src).Context(tc.pos); got != tc.want {
			t.Fatalf("Context(%q, %d) = %v, want %v", tc.src, tc.pos, got, tc.want)
		}
	}
}

func TestInClass(t *testing.T) {
	ix := NewIndex("digit[string(a)]")
	if !ix.InClass(6) {
		t.Fatalf("expected position 6 inside class")
	}
	if ix.InClass(0) {
		t.Fatalf("position 0 is outside any class")
	}
}

func TestHasCaseInsensitive(t *testing.T) {
	cases := map[string]bool{
		"string(banana)":                  false,
		"string(banana, cs)":              false,
		"digit string(x, nocase)":         true,
		"string(a) string(b, ci)":         true,
		"string(a, mc)":                   false,
		"string(unclosed, ci":             false,
		"string(a,b) string(c , Nocase )": true,
	}

	for src, want := range cases {
		if got := HasCaseInsensitive(src); got != want {
			t.Fatalf("HasCaseInsensitive(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestBananaMatching(t *testing.T) {
	cases := []struct {
		src    string
		flags  regexp.Flags
		accept []string
		reject []string
	}{
		{
			src:    "string(banana)",
			accept: []string{"banana"},
			reject: []string{"Banana", "bananas"},
		},
		{
			src:    "string(banana, caseinsensitive)",
			flags:  regexp.Flags{IgnoreCase: true},
			accept: []string{"banana", "Banana", "BANANA", "bAnAnA"},
			reject: []string{"bananas"},
		},
		{
			src:    "string(banana, multicase)",
			accept: []string{"banana", "BANANA", "bAnAnA", "BaNaNa"},
			reject: []string{"bananas", "banan"},
		},
	}

	for _, tc := range cases {
		re := regexp.MustCompile(translate(t, tc.src), tc.flags)
		for _, s := range tc.accept {
			if !re.MatchString(s) {
				t.Fatalf("%s (%s) should match %q", tc.src, re, s)
			}
		}
		for _, s := range tc.reject {
			if re.MatchString(s) {
				t.Fatalf("%s (%s) should not match %q", tc.src, re, s)
			}
		}
	}
}
