package prettyregex

import (
	"strings"

	prxerrors "github.com/part-avocado/prettyregex/errors"
)

// Flags are the matching modes of a compiled pattern, spelled with the
// letters g, i, m, s, u and y.
type Flags struct {
	Global     bool `json:"global"`     // g: Match and Replace act on every match
	IgnoreCase bool `json:"ignoreCase"` // i
	Multiline  bool `json:"multiline"`  // m: ^ and $ match at line breaks
	DotAll     bool `json:"dotAll"`     // s: . matches newlines
	Unicode    bool `json:"unicode"`    // u: accepted; both engines match runes
	Sticky     bool `json:"sticky"`     // y: matches start at 0 and follow each other
}

// ParseFlags parses flag letters. Several strings may be given; their
// letters are combined. Unknown or repeated letters are a validation error.
func ParseFlags(letters ...string) (Flags, error) {
	var (
		f    Flags
		seen = map[rune]bool{}
	)

	for _, s := range letters {
		for _, c := range s {
			if seen[c] {
				return Flags{}, prxerrors.Newf(prxerrors.KindValidation, "flag '%c' given more than once", c).
					WithSuggestion("list each flag once")
			}
			seen[c] = true

			switch c {
			case 'g':
				f.Global = true
			case 'i':
				f.IgnoreCase = true
			case 'm':
				f.Multiline = true
			case 's':
				f.DotAll = true
			case 'u':
				f.Unicode = true
			case 'y':
				f.Sticky = true
			default:
				return Flags{}, prxerrors.Newf(prxerrors.KindValidation, "unknown flag '%c'", c).
					WithSuggestion("use a combination of g, i, m, s, u and y")
			}
		}
	}

	return f, nil
}

// String returns the flag letters in canonical order.
func (f Flags) String() string {
	var b strings.Builder
	for _, v := range []struct {
		on bool
		c  byte
	}{
		{f.Global, 'g'},
		{f.IgnoreCase, 'i'},
		{f.Multiline, 'm'},
		{f.DotAll, 's'},
		{f.Unicode, 'u'},
		{f.Sticky, 'y'},
	} {
		if v.on {
			b.WriteByte(v.c)
		}
	}

	return b.String()
}
