// Package charclass translates the content of a PRX bracket expression.
//
// Three forms exist. Plain content ("charU0-9char(_)") becomes one bracket
// expression. Content joined by "&" requires the subject to contain at least
// one character of each part and becomes a run of (?=.*X) lookaheads followed
// by the merged class. Content joined by "+" is a plain union.
package charclass

import (
	"fmt"
	"strings"
	"unicode/utf8"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/escape"
	"github.com/part-avocado/prettyregex/internal/ranges"
	"github.com/part-avocado/prettyregex/internal/tokens"
	"github.com/part-avocado/prettyregex/regexp"
)

const (
	charOpen   = "char("
	stringOpen = "string("

	// emptyClass never matches. "[]" is rejected by both engines.
	emptyClass = `[^\s\S]`
)

// Requirement is one "&"- or "+"-separated part of a bracket expression.
type Requirement struct {
	// Lookahead is usable inside (?=.*X).
	Lookahead string
	// Class is merged into the combined bracket expression.
	Class string
}

// part is a trimmed operand and its byte offset within the class content.
type part struct {
	text string
	off  int
}

// Translate converts content, the text between "[" and "]", into regex text.
// pos is the byte offset of content within the PRX source and only feeds
// error spans.
func Translate(content string, pos int) (string, error) {
	and, plus, err := scanOperators(content, pos)
	if err != nil {
		return "", err
	}

	switch {
	case and:
		return must(content, pos)
	case plus:
		return union(content, pos)
	default:
		return Direct(content, pos)
	}
}

// scanOperators reports whether "&" or "+" occur outside char() payloads.
func scanOperators(content string, pos int) (and, plus bool, err error) {
	for i := 0; i < len(content); i++ {
		rest := content[i:]
		switch {
		case strings.HasPrefix(rest, stringOpen):
			return false, false, prxerrors.At(prxerrors.KindCharacterClass, pos+i, pos+i+len(stringOpen), stringOpen,
				"string() literal is not allowed inside a character class").
				WithSuggestion("use char() for single characters inside [...], or move string() outside the class")
		case strings.HasPrefix(rest, charOpen):
			end := strings.IndexByte(rest[len(charOpen):], ')')
			if end < 0 {
				// Reported with a precise span by the translator.
				return and, plus, nil
			}
			i += len(charOpen) + end
		case rest[0] == '&':
			and = true
		case rest[0] == '+':
			plus = true
		}
	}

	return and, plus, nil
}

// split cuts content at every op outside char() payloads, trims the pieces
// and drops empty ones.
func split(content string, op byte) []part {
	var (
		parts []part
		start int
	)

	flush := func(end int) {
		raw := content[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			parts = append(parts, part{text: trimmed, off: start + strings.Index(raw, trimmed)})
		}
	}

	for i := 0; i < len(content); i++ {
		if strings.HasPrefix(content[i:], charOpen) {
			if end := strings.IndexByte(content[i+len(charOpen):], ')'); end >= 0 {
				i += len(charOpen) + end
				continue
			}
		}
		if content[i] == op {
			flush(i)
			start = i + 1
		}
	}
	flush(len(content))

	return parts
}

// withoutOperator removes every op outside char() payloads.
func withoutOperator(content string, op byte) string {
	var b strings.Builder
	for _, p := range split(content, op) {
		b.WriteString(p.text)
	}

	return b.String()
}

func must(content string, pos int) (string, error) {
	parts := split(content, '&')
	if len(parts) < 2 {
		return Direct(withoutOperator(content, '&'), pos)
	}

	var lookaheads, class strings.Builder
	for _, p := range parts {
		req, err := Resolve(p.text, pos+p.off)
		if err != nil {
			return "", err
		}
		lookaheads.WriteString("(?=.*")
		lookaheads.WriteString(req.Lookahead)
		lookaheads.WriteByte(')')
		class.WriteString(req.Class)
	}

	return lookaheads.String() + "[" + class.String() + "]", nil
}

func union(content string, pos int) (string, error) {
	parts := split(content, '+')
	if len(parts) < 2 {
		return Direct(withoutOperator(content, '+'), pos)
	}

	var class strings.Builder
	class.WriteByte('[')
	for _, p := range parts {
		req, err := Resolve(p.text, pos+p.off)
		if err != nil {
			return "", err
		}
		class.WriteString(req.Class)
	}
	class.WriteByte(']')

	return class.String(), nil
}

// Direct translates operator-free content into one bracket expression.
func Direct(content string, pos int) (string, error) {
	if content == "" {
		return emptyClass, nil
	}

	var b strings.Builder
	b.Grow(len(content) + 8)
	b.WriteByte('[')

	for i := 0; i < len(content); {
		rest := content[i:]

		if strings.HasPrefix(rest, charOpen) {
			payload, n, err := charPayload(rest, pos+i)
			if err != nil {
				return "", err
			}
			member, err := memberPayload(payload, pos+i)
			if err != nil {
				return "", err
			}
			b.WriteString(member)
			i += n
			continue
		}

		if tok, ok := tokens.Match(rest); ok {
			if tok.ZeroWidth() {
				return "", zeroWidthError(tok, pos+i)
			}
			b.WriteString(tok.Bare())
			i += len(tok.Name)
			continue
		}

		if text, n, err := rangeAt(rest, pos+i); err != nil {
			return "", err
		} else if n > 0 {
			b.WriteString(text)
			i += n
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case r == '-' && i > 0 && i+size < len(content):
			b.WriteString(`\-`)
		case r == '[':
			b.WriteString(`\[`)
		default:
			b.WriteString(escape.InClass(rest[:size]))
		}
		i += size
	}

	b.WriteByte(']')
	return b.String(), nil
}

// Resolve splits one requirement into its lookahead and class forms. When a
// requirement holds several tokens, the last token's lookahead represents it
// while every token contributes to the class.
func Resolve(text string, pos int) (Requirement, error) {
	var (
		lookahead string
		class     strings.Builder
	)

	for i := 0; i < len(text); {
		rest := text[i:]

		if strings.HasPrefix(rest, charOpen) {
			payload, n, err := charPayload(rest, pos+i)
			if err != nil {
				return Requirement{}, err
			}
			member, err := memberPayload(payload, pos+i)
			if err != nil {
				return Requirement{}, err
			}
			lookahead = lookaheadPayload(payload)
			class.WriteString(member)
			i += n
			continue
		}

		if tok, ok := tokens.Match(rest); ok {
			if tok.ZeroWidth() {
				return Requirement{}, zeroWidthError(tok, pos+i)
			}
			lookahead = tok.Replacement
			class.WriteString(tok.Bare())
			i += len(tok.Name)
			continue
		}

		if r, n, err := rangeAt(rest, pos+i); err != nil {
			return Requirement{}, err
		} else if n > 0 {
			lookahead = "[" + r + "]"
			class.WriteString(r)
			i += n
			continue
		}

		_, size := utf8.DecodeRuneInString(rest)
		ch := rest[:size]
		lookahead = escape.Literal(ch)
		class.WriteString(escape.ClassMember(ch))
		i += size
	}

	return Requirement{Lookahead: lookahead, Class: class.String()}, nil
}

// charPayload reads "char(x)" at the start of s and returns x and the number
// of bytes consumed.
func charPayload(s string, pos int) (string, int, error) {
	end := strings.IndexByte(s[len(charOpen):], ')')
	if end < 0 {
		return "", 0, prxerrors.At(prxerrors.KindCharacterClass, pos, pos+len(s), s,
			"unclosed char() literal in character class").
			WithSuggestion("close the literal with ')' before the ']' that ends the class")
	}

	return s[len(charOpen) : len(charOpen)+end], len(charOpen) + end + 1, nil
}

// A payload that starts with a backslash is an escape sequence the author
// vouches for and is emitted unchanged once the engine accepts it inside a
// bracket expression.
func memberPayload(payload string, pos int) (string, error) {
	if !strings.HasPrefix(payload, `\`) {
		return escape.ClassMember(payload), nil
	}

	if _, err := regexp.Compile("["+payload+"]", regexp.Flags{}); err != nil {
		return "", prxerrors.At(prxerrors.KindCharacterClass, pos, pos+len(charOpen)+len(payload)+1, payload,
			fmt.Sprintf("invalid escape sequence %q in char()", payload)).
			WithSuggestion("drop the backslash to match the characters literally").
			Wrap(err)
	}

	return payload, nil
}

// lookaheadPayload keeps a multi-rune payload as a sequence, so char(ab)
// requires "ab" somewhere in the subject.
func lookaheadPayload(payload string) string {
	if strings.HasPrefix(payload, `\`) {
		return payload
	}

	return escape.Literal(payload)
}

// rangeAt recognizes an "X-Y" triple at the start of s. n is zero when s does
// not start with a range.
func rangeAt(s string, pos int) (text string, n int, err error) {
	start, size := utf8.DecodeRuneInString(s)
	if len(s) <= size+1 || s[size] != '-' {
		return "", 0, nil
	}

	end, endSize := utf8.DecodeRuneInString(s[size+1:])
	ok, err := ranges.Check(start, end)
	if err != nil {
		if e, isPRX := err.(*prxerrors.Error); isPRX {
			e.Pos, e.End = pos, pos+size+1+endSize
		}
		return "", 0, err
	}
	if !ok {
		return "", 0, nil
	}

	return ranges.Expand(start, end), size + 1 + endSize, nil
}

func zeroWidthError(tok tokens.Token, pos int) error {
	return prxerrors.At(prxerrors.KindCharacterClass, pos, pos+len(tok.Name), tok.Name,
		"'"+tok.Name+"' is an assertion and cannot appear inside a character class").
		WithSuggestion("move '" + tok.Name + "' outside the brackets")
}
