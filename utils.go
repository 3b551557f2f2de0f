package prettyregex

import (
	"strings"

	"github.com/part-avocado/prettyregex/internal/tokens"
)

// Escape returns PRX that matches s literally. Every rune is written as a
// char() literal, so no part of s can be read as a named class or operator.
// A closing parenthesis cannot appear inside char(), so it is spelled as a
// hex escape.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ')':
			b.WriteString(`char(\x29)`)
		case '\\':
			b.WriteString(`char(\\)`)
		default:
			b.WriteString("char(")
			b.WriteRune(r)
			b.WriteByte(')')
		}
	}

	return b.String()
}

// Or joins patterns as alternatives.
func Or(patterns ...string) string {
	return strings.Join(patterns, "|")
}

// CharClass returns a class matching any of the named classes, e.g.
// CharClass("charU", "digit") is "[charU+digit]".
func CharClass(names ...string) string {
	return "[" + strings.Join(names, "+") + "]"
}

// Group wraps pattern in a capturing group.
func Group(pattern string) string {
	return "(" + pattern + ")"
}

// Quantify applies quantifier q, such as "+" or "{2,3}", to pattern. A
// pattern longer than one unit is grouped first.
func Quantify(pattern, q string) string {
	if isUnit(pattern) {
		return pattern + q
	}

	return Group(pattern) + q
}

// isUnit reports whether pattern is a single group, class, char() literal or
// named class.
func isUnit(pattern string) bool {
	switch {
	case pattern == "":
		return false
	case strings.HasPrefix(pattern, "char(") && strings.Index(pattern, ")") == len(pattern)-1:
		return true
	case enclosed(pattern, '(', ')'), enclosed(pattern, '[', ']'):
		return true
	}

	_, ok := tokens.Lookup(pattern)
	return ok
}

// enclosed reports whether the first rune of s opens a bracket that the
// last rune closes.
func enclosed(s string, open, close byte) bool {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return false
	}

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 && i < len(s)-1 {
				return false
			}
		}
	}

	return depth == 0
}
