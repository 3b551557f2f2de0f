package prettyregex

import "testing"

func TestEscape(t *testing.T) {
	subjects := []string{
		"a.b",
		"digit",
		"(x)",
		`back\slash`,
		"char(",
		"1+1=2?",
		"[a-z]{3}",
		"a)b(c",
		"$^|*",
		"ümlaut ✓",
		"start end",
	}

	p := quiet()
	for _, s := range subjects {
		t.Run(s, func(t *testing.T) {
			m, err := p.Compile("start" + Escape(s) + "end")
			if err != nil {
				t.Fatalf("Compile(Escape(%q)): %v", s, err)
			}
			if !m.MatchString(s) {
				t.Fatalf("%q does not match %q", m, s)
			}
			if m.MatchString(s + "x") {
				t.Fatalf("%q matches %q", m, s+"x")
			}
		})
	}

	if got := Escape("a)"); got != `char(a)char(\x29)` {
		t.Fatalf("Escape(\"a)\") = %q", got)
	}
}

func TestBuilders(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{Or("string(cat)", "string(dog)"), "string(cat)|string(dog)"},
		{CharClass("charU", "digit"), "[charU+digit]"},
		{Group("digit+"), "(digit+)"},
		{Quantify("digit", "+"), "digit+"},
		{Quantify("char(a)", "*"), "char(a)*"},
		{Quantify("char(a)char(b)", "*"), "(char(a)char(b))*"},
		{Quantify("[charU+charL]", "{2}"), "[charU+charL]{2}"},
		{Quantify("(a|b)", "?"), "(a|b)?"},
		{Quantify("(a)(b)", "?"), "((a)(b))?"},
		{Quantify("digitspace", "+"), "(digitspace)+"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestBuildersCompile(t *testing.T) {
	src := "start" + Quantify(Group(Or("char(a)char(b)", CharClass("digit", "space"))), "{2}") + "end"

	m, err := quiet().Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	for subject, want := range map[string]bool{"ab1": true, "ab ab": false, "1 ": true, "ab": false} {
		if got := m.MatchString(subject); got != want {
			t.Errorf("%q MatchString(%q) = %v, want %v", src, subject, got, want)
		}
	}
}
