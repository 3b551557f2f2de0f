// Package escape quotes literal text for use in an emitted regex, either bare
// in the pattern or as a member of a bracket expression.
package escape

import "strings"

const (
	literalSpecials = `.*+?^${}()|[]\`
	classSpecials   = `]\^`
)

// Literal escapes every regex metacharacter in s with a backslash so the
// result matches s verbatim when placed bare in a pattern.
func Literal(s string) string {
	return quote(s, literalSpecials)
}

// InClass escapes the characters that are special inside a bracket
// expression: "]", "\" and "^". A "-" is left alone because ranges are
// handled by the caller.
func InClass(s string) string {
	return quote(s, classSpecials)
}

// ClassMember is like [InClass] but also escapes "-" and "[", for text that
// is known to be a literal member of a bracket expression and must never be
// read as a range or a POSIX class.
func ClassMember(s string) string {
	return quote(s, classSpecials+"-[")
}

func quote(s, specials string) string {
	if !strings.ContainsAny(s, specials) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r < 0x80 && strings.IndexByte(specials, byte(r)) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
