// Package ranges decides whether two characters form a PRX range and how
// that range is written in the emitted bracket expression.
package ranges

import (
	"fmt"

	prxerrors "github.com/part-avocado/prettyregex/errors"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isAlpha(r rune) bool { return isLower(r) || isUpper(r) }

func toLower(r rune) rune {
	if isUpper(r) {
		return r + 'a' - 'A'
	}
	return r
}

func toUpper(r rune) rune {
	if isLower(r) {
		return r - ('a' - 'A')
	}
	return r
}

// Check reports whether start-end is a range.
//
// Digits, same-case letters and mixed-case letters are comparable. A
// comparable pair in descending order returns a [prxerrors.KindRange] error.
// Anything else is not a range at all and returns false, nil so the caller
// treats the characters literally.
func Check(start, end rune) (bool, error) {
	text := string(start) + "-" + string(end)

	switch {
	case isDigit(start) && isDigit(end):
		if start > end {
			return false, rangeError(text, "descending numeric range")
		}
	case isLower(start) && isLower(end):
		if start > end {
			return false, rangeError(text, "descending lowercase range")
		}
	case isUpper(start) && isUpper(end):
		if start > end {
			return false, rangeError(text, "descending uppercase range")
		}
	case isAlpha(start) && isAlpha(end):
		if toLower(start) > toLower(end) {
			return false, rangeError(text, "descending mixed-case range")
		}
	default:
		return false, nil
	}

	return true, nil
}

func rangeError(text, kind string) *prxerrors.Error {
	e := prxerrors.New(prxerrors.KindRange, fmt.Sprintf("%s '%s'", kind, text))
	e.Text = text
	return e.WithSuggestion(fmt.Sprintf("write the range in ascending order: '%c-%c'", text[2], text[0]))
}

// IsMixedCase reports whether start and end are letters of different case:
// either the same letter ("a-A") or different letters ("a-E").
func IsMixedCase(start, end rune) bool {
	return isAlpha(start) && isAlpha(end) && isLower(start) != isLower(end)
}

// Expand returns the bracket-expression text for a valid range. A mixed-case
// range covers both cases of the enclosed letters: "a-E" becomes "a-eA-E".
func Expand(start, end rune) string {
	if !IsMixedCase(start, end) {
		return string(start) + "-" + string(end)
	}

	return string(toLower(start)) + "-" + string(toLower(end)) +
		string(toUpper(start)) + "-" + string(toUpper(end))
}
