package macro

import (
	"strings"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/regexp"
)

var starPair = regexp.MustCompile(`\*.*\*`, regexp.Flags{})

// unsupported lists keywords whose expansion neither engine can compile.
var unsupported = []struct {
	word, message string
}{
	{"cut", "backtracking verb 'cut' is not supported by the regex engines"},
	{"fail", "backtracking verb 'fail' is not supported by the regex engines"},
	{"accept", "backtracking verb 'accept' is not supported by the regex engines"},
	{"subroutine", "subroutine calls are not supported by the regex engines"},
	{"possessive", "possessive quantifiers are not supported by the regex engines"},
}

// Validate checks an advanced pattern. Errors mean the expansion cannot be
// compiled; warnings are advisory.
func Validate(src string) (errs, warns []*prxerrors.Error) {
	errs, warns = []*prxerrors.Error{}, []*prxerrors.Error{}

	// Balance is counted after expansion: namedgroup(n) opens a group that
	// the pattern closes later.
	expanded := Expand(src)
	if strings.Count(expanded, "(") != strings.Count(expanded, ")") {
		errs = append(errs, prxerrors.New(prxerrors.KindValidation, "unmatched parentheses in pattern").
			WithSuggestion("every call form and group needs a closing ')'"))
	}

	if hasWord(src, "recurse") {
		warns = append(warns, prxerrors.New(prxerrors.KindValidation,
			"recursive patterns can be slow and may cause stack overflow"))
	}
	for _, u := range unsupported {
		if strings.Contains(src, u.word) {
			warns = append(warns, prxerrors.New(prxerrors.KindValidation, u.message))
		}
	}
	if starPair.MatchString(src) {
		warns = append(warns, prxerrors.New(prxerrors.KindQuantifier,
			"nested quantifiers detected, this may cause catastrophic backtracking").
			WithSuggestion("make the repeated parts mutually exclusive or use atomic groups"))
	}

	if len(errs) > 0 {
		return errs, warns
	}

	if _, err := regexp.Compile(expanded, regexp.Flags{}); err != nil {
		errs = append(errs, prxerrors.Newf(prxerrors.KindParse,
			"expanded pattern %q is rejected by the regex engine", expanded).Wrap(err))
	}

	return errs, warns
}

// SuggestFlags returns the flags an advanced pattern most likely wants, in
// the order u, m, s, i.
func SuggestFlags(src string) string {
	var b strings.Builder

	if strings.Contains(src, "unicode") || strings.Contains(src, "emoji") || strings.Contains(src, `\p`) {
		b.WriteByte('u')
	}
	if strings.Contains(src, "multiline") || strings.ContainsAny(src, "^$") {
		b.WriteByte('m')
	}
	if strings.Contains(src, "singleline") || strings.Contains(src, "any") {
		b.WriteByte('s')
	}
	if strings.Contains(src, "ignorecase") {
		b.WriteByte('i')
	}

	return b.String()
}

func hasWord(s, word string) bool {
	for from := 0; ; {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(word)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		from = start + 1
	}
}
