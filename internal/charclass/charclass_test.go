package charclass

import (
	"errors"
	"testing"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/regexp"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"direct tokens", "charUcharL0-9char(_)", `[A-Za-z0-9_]`},
		{"direct mixed range", "a-E", `[a-eA-E]`},
		{"direct literal dash", "a-b-c", `[a-b\-c]`},
		{"direct trailing dash", "a-", `[a-]`},
		{"direct escapes", `]^\`, `[\]\^\\]`},
		{"direct unicode", "é", `[é]`},
		{"direct bracket", "[:alpha:", `[\[:alpha:]`},
		{"direct raw escape", `char(\d)_`, `[\d_]`},
		{"direct empty", "", `[^\s\S]`},
		{"direct wordchar", "wordchar", `[\w]`},
		{"must", "charU&charL&0-9", `(?=.*[A-Z])(?=.*[a-z])(?=.*[0-9])[A-Za-z0-9]`},
		{"must spaced", " charU & digit ", `(?=.*[A-Z])(?=.*[0-9])[A-Z0-9]`},
		{"must char payload", "char(&)&digit", `(?=.*&)(?=.*[0-9])[&0-9]`},
		{"must dot literal", "char(.)&charL", `(?=.*\.)(?=.*[a-z])[.a-z]`},
		{"must multi-rune char", "char(ab)&digit", `(?=.*ab)(?=.*[0-9])[ab0-9]`},
		{"must multi-rune escaped", "char(a.)&digit", `(?=.*a\.)(?=.*[0-9])[a.0-9]`},
		{"must degenerate", "charU&", `[A-Z]`},
		{"union", "charU+charL+0-9", `[A-Za-z0-9]`},
		{"union dash member", "charL+char(-)", `[a-z\-]`},
		{"union degenerate", "+digit", `[0-9]`},
		{"last token wins", "charUdigit&charL", `(?=.*[0-9])(?=.*[a-z])[A-Z0-9a-z]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Translate(tc.content, 0)
			if err != nil {
				t.Fatalf("Translate(%q): %v", tc.content, err)
			}
			if got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.content, got, tc.want)
			}
			if _, err := regexp.Compile(got, regexp.Flags{}); err != nil {
				t.Fatalf("emitted %q does not compile: %v", got, err)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		kind    error
		pos     int
	}{
		{"descending digits", "9-0", prxerrors.ErrRange, 10},
		{"descending in must", "charU&z-a", prxerrors.ErrRange, 16},
		{"mixed descending", "z-B", prxerrors.ErrRange, 10},
		{"zero width", "charUstart", prxerrors.ErrCharacterClass, 15},
		{"string literal", "string(x)", prxerrors.ErrCharacterClass, 10},
		{"unclosed char", "char(a", prxerrors.ErrCharacterClass, 10},
		{"bad raw escape", `a&char(\)`, prxerrors.ErrCharacterClass, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Translate(tc.content, 10)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("Translate(%q) err = %v, want %v", tc.content, err, tc.kind)
			}

			var e *prxerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("error is not *errors.Error: %T", err)
			}
			if e.Pos != tc.pos {
				t.Fatalf("Pos = %d, want %d", e.Pos, tc.pos)
			}
		})
	}
}

func TestMustSemantics(t *testing.T) {
	class, err := Translate("charU&charL&0-9", 0)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	re := regexp.MustCompile(class+"{6,}", regexp.Flags{})

	for subject, want := range map[string]bool{
		"User123":     true,
		"PASSWORD123": false,
		"Password":    false,
	} {
		if got := re.MatchString(subject); got != want {
			t.Fatalf("%s matched %q = %v, want %v", class, subject, got, want)
		}
	}

	union, err := Translate("charU+charL+0-9", 0)
	if err != nil {
		t.Fatalf("Translate union: %v", err)
	}
	if !regexp.MustCompile(union+"{6,}", regexp.Flags{}).MatchString("PASSWORD123") {
		t.Fatalf("%s should accept PASSWORD123", union)
	}
}

func TestResolve(t *testing.T) {
	cases := map[string]Requirement{
		"charU":    {Lookahead: "[A-Z]", Class: "A-Z"},
		"wordchar": {Lookahead: `\w`, Class: `\w`},
		"a-f":      {Lookahead: "[a-f]", Class: "a-f"},
		"A-c":      {Lookahead: "[a-cA-C]", Class: "a-cA-C"},
		"char(.)":  {Lookahead: `\.`, Class: "."},
		`char(\d)`: {Lookahead: `\d`, Class: `\d`},
		"char(!@)": {Lookahead: "[!@]", Class: "!@"},
		"$":        {Lookahead: `\$`, Class: "$"},
		"-":        {Lookahead: "-", Class: `\-`},
	}

	for text, want := range cases {
		got, err := Resolve(text, 0)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", text, err)
		}
		if got != want {
			t.Fatalf("Resolve(%q) = %+v, want %+v", text, got, want)
		}
	}
}
