// Package tokens holds the PRX named-class table.
//
// Some spellings are prefixes of others ("char" and "charU", "word" and
// "wordchar"), so lookups always try the longest spelling first.
package tokens

import (
	"sort"
	"strings"
)

// Token is one named class: its PRX spelling and the regex fragment it
// stands for.
type Token struct {
	Name        string
	Replacement string
}

// Bracketed reports whether the replacement is a bracket expression such as
// "[A-Z]".
func (t Token) Bracketed() bool {
	r := t.Replacement
	return len(r) >= 2 && r[0] == '[' && r[len(r)-1] == ']'
}

// Bare returns the replacement with one pair of surrounding brackets
// stripped, for merging into another bracket expression.
func (t Token) Bare() string {
	if t.Bracketed() {
		return t.Replacement[1 : len(t.Replacement)-1]
	}

	return t.Replacement
}

// ZeroWidth reports whether the token is an assertion rather than a
// character category. Assertions have no meaning inside a bracket
// expression.
func (t Token) ZeroWidth() bool {
	switch t.Replacement {
	case "^", "$", `\b`, `\B`:
		return true
	}

	return false
}

var table = sorted([]Token{
	{"charU", "[A-Z]"},
	{"charL", "[a-z]"},
	{"char", "[a-zA-Z]"},
	{"0-9", "[0-9]"},
	{"digit", "[0-9]"},
	{"space", " "},
	{"tab", `\t`},
	{"newline", `\n`},
	{"whitespace", `\s`},
	{"notwhitespace", `\S`},
	{"wordchar", `\w`},
	{"notwordchar", `\W`},
	{"any", "."},
	{"start", "^"},
	{"end", "$"},
	{"word", `\b`},
	{"notword", `\B`},
})

func sorted(ts []Token) []Token {
	sort.SliceStable(ts, func(i, j int) bool {
		if len(ts[i].Name) != len(ts[j].Name) {
			return len(ts[i].Name) > len(ts[j].Name)
		}
		return ts[i].Name < ts[j].Name
	})

	return ts
}

// All returns the table in lookup order. The slice is a copy.
func All() []Token {
	return append([]Token(nil), table...)
}

// Match returns the longest token spelled at the start of s.
func Match(s string) (Token, bool) {
	for _, t := range table {
		if strings.HasPrefix(s, t.Name) {
			return t, true
		}
	}

	return Token{}, false
}

// Lookup returns the token spelled exactly name.
func Lookup(name string) (Token, bool) {
	for _, t := range table {
		if t.Name == name {
			return t, true
		}
	}

	return Token{}, false
}
