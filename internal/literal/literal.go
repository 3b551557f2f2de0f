// Package literal translates PRX string() literals.
//
// A literal is written string(text) or string(text, flag) where flag is one
// of caseinsensitive (ci, nocase), casesensitive (cs, case) or multicase
// (mc). Depending on where the literal sits, the emitted text is wrapped in
// ^...$ or \b...\b so that a lone literal matches a whole word or string.
package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/escape"
)

const open = "string("

// Case is the case policy of one literal.
type Case uint8

const (
	CaseDefault Case = iota
	CaseSensitive
	CaseInsensitive
	CaseMulti
)

var caseKeywords = map[string]Case{
	"caseinsensitive": CaseInsensitive,
	"ci":              CaseInsensitive,
	"nocase":          CaseInsensitive,
	"casesensitive":   CaseSensitive,
	"cs":              CaseSensitive,
	"case":            CaseSensitive,
	"multicase":       CaseMulti,
	"mc":              CaseMulti,
}

// Split separates the content of string(...) into its text and case policy.
// A trailing ", word" that is not a known keyword belongs to the text.
func Split(content string) (string, Case) {
	comma := strings.LastIndexByte(content, ',')
	if comma < 0 {
		return content, CaseDefault
	}

	kw := strings.ToLower(strings.TrimSpace(content[comma+1:]))
	c, ok := caseKeywords[kw]
	if !ok {
		return content, CaseDefault
	}

	return strings.TrimRightFunc(content[:comma], unicode.IsSpace), c
}

// Translate converts the string() literal that starts at src[start] and
// returns the emitted text and the offset just past its closing ")".
// idx must have been built from src.
func Translate(src string, start int, idx *Index) (string, int, error) {
	body := start + len(open)
	end := strings.IndexByte(src[body:], ')')
	if end < 0 {
		return "", 0, prxerrors.At(prxerrors.KindParse, start, len(src), src[start:],
			"unclosed string() literal").
			WithSuggestion("add ')' to close string(")
	}
	end += body
	next := end + 1

	text, c := Split(src[body:end])
	if strings.TrimSpace(text) == "" {
		return "(?:)", next, nil
	}

	out := emit(text, c)

	if quantifierAt(src, next) {
		// A repeated literal repeats as a whole.
		if utf8.RuneCountInString(text) > 1 {
			out = "(?:" + out + ")"
		}
		return out, next, nil
	}
	if idx.InClass(start) {
		return out, next, nil
	}

	switch idx.Context(start) {
	case Alternation:
		return "^" + out + "$", next, nil
	case Standalone:
		return standalone(text, out), next, nil
	default:
		return out, next, nil
	}
}

func emit(text string, c Case) string {
	if c != CaseMulti {
		return escape.Literal(text)
	}

	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, r := range text {
		lo, up := unicode.ToLower(r), unicode.ToUpper(r)
		if lo == up {
			b.WriteString(escape.Literal(string(r)))
			continue
		}
		b.WriteByte('[')
		b.WriteRune(lo)
		b.WriteRune(up)
		b.WriteByte(']')
	}

	return b.String()
}

// The engines treat \b as an ASCII word boundary, so only ASCII letters and
// digits count as alphanumeric here.
func standalone(text, out string) string {
	for i := 0; i < len(text); i++ {
		if !isAlnum(text[i]) {
			return "^" + out + "$"
		}
	}

	return `\b` + out + `\b`
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// HasCaseInsensitive reports whether any string() literal in src carries a
// case-insensitive flag. One such literal makes the whole compiled pattern
// case-insensitive.
func HasCaseInsensitive(src string) bool {
	for i := 0; ; {
		j := strings.Index(src[i:], open)
		if j < 0 {
			return false
		}
		body := i + j + len(open)
		end := strings.IndexByte(src[body:], ')')
		if end < 0 {
			return false
		}
		if _, c := Split(src[body : body+end]); c == CaseInsensitive {
			return true
		}
		i = body + end + 1
	}
}
