// Package parser translates PRX source text into a regular expression.
//
// The scanner walks the source once, left to right, and at each position
// recognizes in order: "[...]" classes, string() and char() literals, "{...}"
// quantifiers, grouping and alternation punctuation, the "+*?" quantifiers,
// named classes (longest spelling first) and finally any other character,
// which is matched literally. It stops at the first structural problem.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/charclass"
	"github.com/part-avocado/prettyregex/internal/escape"
	"github.com/part-avocado/prettyregex/internal/literal"
	"github.com/part-avocado/prettyregex/internal/tokens"
	"github.com/part-avocado/prettyregex/regexp"
)

// MaxRepeat is the largest repetition count either engine accepts.
const MaxRepeat = 1000

const (
	charOpen   = "char("
	stringOpen = "string("
)

// state tracks what the last emitted item can take, so every quantifier the
// parser emits has an operand.
type state uint8

const (
	stateEmpty    state = iota // start, after "(" or "|", or after an assertion
	stateAtom                  // something repeatable
	stateRepeated              // a quantifier
	stateLazy                  // a quantifier with its "?" modifier
)

type parser struct {
	src    string
	idx    *literal.Index
	out    strings.Builder
	state  state
	groups []int // offsets of open "("

	// Nested counted repeats multiply; both engines reject a product above
	// MaxRepeat. weight is the product carried by the last atom and weights
	// holds the largest product inside each open group.
	weight  int
	weights []int
}

// Parse translates src. The returned pattern is accepted by the regexp
// package. Errors are [*prxerrors.Error] values; a failure inside a
// translation step is reported as a [prxerrors.KindParse] error rather than
// a panic.
func Parse(src string) (pattern string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pattern = ""
			err = prxerrors.Newf(prxerrors.KindParse, "internal translation failure: %v", r)
		}
	}()

	if !utf8.ValidString(src) {
		return "", prxerrors.New(prxerrors.KindParse, "pattern is not valid UTF-8")
	}

	p := &parser{src: src, idx: literal.NewIndex(src)}
	p.out.Grow(len(src) * 2)

	for i := 0; i < len(src); {
		next, err := p.step(i)
		if err != nil {
			return "", err
		}
		i = next
	}

	if n := len(p.groups); n > 0 {
		pos := p.groups[n-1]
		return "", prxerrors.At(prxerrors.KindParse, pos, pos+1, "(",
			fmt.Sprintf("unclosed group at position %d", pos)).
			WithSuggestion("add ')' to close the group")
	}

	return p.out.String(), nil
}

func (p *parser) step(i int) (int, error) {
	rest := p.src[i:]

	switch {
	case rest[0] == '[':
		return p.class(i)
	case strings.HasPrefix(rest, stringOpen):
		return p.literal(i)
	case strings.HasPrefix(rest, charOpen):
		return p.char(i)
	case rest[0] == '{':
		return p.repeat(i)
	case rest[0] == '(':
		p.groups = append(p.groups, i)
		p.weights = append(p.weights, 1)
		p.emit("(", stateEmpty)
		return i + 1, nil
	case rest[0] == ')':
		return p.closeGroup(i)
	case rest[0] == '|':
		p.emit("|", stateEmpty)
		return i + 1, nil
	case rest[0] == '+' || rest[0] == '*' || rest[0] == '?':
		return p.quantifier(i, rest[:1])
	}

	if tok, ok := tokens.Match(rest); ok {
		st := stateAtom
		if tok.ZeroWidth() {
			st = stateEmpty
		}
		p.emit(tok.Replacement, st)
		return i + len(tok.Name), nil
	}

	_, size := utf8.DecodeRuneInString(rest)
	p.emit(escape.Literal(rest[:size]), stateAtom)

	return i + size, nil
}

func (p *parser) emit(s string, st state) {
	p.out.WriteString(s)
	p.state = st
	if st == stateAtom {
		p.weight = 1
	}
}

// note raises the product recorded for the innermost open group.
func (p *parser) note(w int) {
	if n := len(p.weights); n > 0 && w > p.weights[n-1] {
		p.weights[n-1] = w
	}
}

func (p *parser) class(i int) (int, error) {
	end := strings.IndexByte(p.src[i+1:], ']')
	if end < 0 {
		return 0, prxerrors.At(prxerrors.KindParse, i, len(p.src), p.src[i:],
			fmt.Sprintf("unclosed character class at position %d", i)).
			WithSuggestion("add ']' to close the character class")
	}
	end += i + 1

	out, err := charclass.Translate(p.src[i+1:end], i+1)
	if err != nil {
		return 0, err
	}
	p.emit(out, stateAtom)

	return end + 1, nil
}

func (p *parser) literal(i int) (int, error) {
	out, next, err := literal.Translate(p.src, i, p.idx)
	if err != nil {
		return 0, err
	}

	st := stateAtom
	if strings.HasPrefix(out, "^") || strings.HasPrefix(out, `\b`) {
		// Anchored literals end in an assertion.
		st = stateEmpty
	}
	p.emit(out, st)

	return next, nil
}

func (p *parser) char(i int) (int, error) {
	body := i + len(charOpen)
	end := strings.IndexByte(p.src[body:], ')')
	if end < 0 {
		return 0, prxerrors.At(prxerrors.KindParse, i, len(p.src), p.src[i:],
			"unclosed char() literal").
			WithSuggestion("add ')' to close char(")
	}
	end += body
	payload := p.src[body:end]

	switch {
	case payload == "":
	case strings.HasPrefix(payload, `\`):
		if _, err := regexp.Compile(payload, regexp.Flags{}); err != nil {
			return 0, prxerrors.At(prxerrors.KindParse, body, end, payload,
				fmt.Sprintf("invalid escape sequence %q in char()", payload)).
				WithSuggestion("drop the backslash to match the characters literally").
				Wrap(err)
		}
		p.emit(payload, stateAtom)
	case utf8.RuneCountInString(payload) > 1 && repeatsNext(p.src, end+1):
		p.emit("(?:"+escape.Literal(payload)+")", stateAtom)
	default:
		p.emit(escape.Literal(payload), stateAtom)
	}

	return end + 1, nil
}

func repeatsNext(src string, i int) bool {
	return i < len(src) && strings.IndexByte("+*?{", src[i]) >= 0
}

func (p *parser) closeGroup(i int) (int, error) {
	n := len(p.groups)
	if n == 0 {
		return 0, prxerrors.At(prxerrors.KindParse, i, i+1, ")",
			fmt.Sprintf("unmatched ')' at position %d", i)).
			WithSuggestion("remove the ')' or add a matching '('")
	}
	inner := p.weights[n-1]
	p.groups = p.groups[:n-1]
	p.weights = p.weights[:n-1]
	p.emit(")", stateAtom)
	p.weight = inner
	p.note(inner)

	return i + 1, nil
}

func (p *parser) quantifier(i int, q string) (int, error) {
	switch {
	case p.state == stateAtom:
		p.emit(q, stateRepeated)
	case p.state == stateRepeated && q == "?":
		p.emit(q, stateLazy)
	default:
		return 0, p.nothingToRepeat(i, q)
	}

	return i + 1, nil
}

func (p *parser) nothingToRepeat(i int, q string) error {
	msg := fmt.Sprintf("quantifier '%s' at position %d has nothing to repeat", q, i)
	if p.state == stateRepeated || p.state == stateLazy {
		msg = fmt.Sprintf("quantifier '%s' at position %d follows another quantifier", q, i)
	}

	hint := "place a character or group before the quantifier"
	if len(q) == 1 {
		hint = "write char(" + q + ") to match '" + q + "' literally"
	}

	return prxerrors.At(prxerrors.KindQuantifier, i, i+len(q), q, msg).WithSuggestion(hint)
}

// repeat validates "{...}" and emits it in normalized form.
func (p *parser) repeat(i int) (int, error) {
	end := strings.IndexByte(p.src[i+1:], '}')
	if end < 0 {
		return 0, prxerrors.At(prxerrors.KindParse, i, len(p.src), p.src[i:],
			"unclosed quantifier").
			WithSuggestion("add '}' to close the quantifier")
	}
	end += i + 1
	raw := p.src[i : end+1]

	q, limit, err := normalizeRepeat(p.src[i+1 : end])
	if err != nil {
		e := prxerrors.At(prxerrors.KindQuantifier, i, end+1, raw,
			fmt.Sprintf("%s in quantifier '%s'", err, raw))
		return 0, e.WithSuggestion("write the quantifier as {n}, {n,} or {n,m} with n <= m <= " + strconv.Itoa(MaxRepeat))
	}

	if p.state != stateAtom {
		return 0, p.nothingToRepeat(i, raw)
	}

	product := p.weight * limit
	if product > MaxRepeat {
		e := prxerrors.At(prxerrors.KindQuantifier, i, end+1, raw,
			fmt.Sprintf("nested repeat count %d exceeds %d in quantifier '%s'", product, MaxRepeat, raw))
		return 0, e.WithSuggestion("keep the product of nested repeat counts at or below " + strconv.Itoa(MaxRepeat))
	}
	p.emit(q, stateRepeated)
	p.weight = product
	p.note(product)

	return end + 1, nil
}

type repeatError string

func (e repeatError) Error() string { return string(e) }

// normalizeRepeat checks the content of "{...}" and returns the quantifier
// as emitted along with its largest count, the lower bound when the range is
// open. "{,m}" becomes "{0,m}".
func normalizeRepeat(content string) (string, int, error) {
	content = strings.ReplaceAll(content, " ", "")

	lo, hi, ranged := strings.Cut(content, ",")
	if lo == "" && ranged {
		lo = "0"
	}

	n, err := bound(lo)
	if err != nil {
		return "", 0, err
	}
	if !ranged {
		return "{" + strconv.Itoa(n) + "}", n, nil
	}
	if hi == "" {
		return "{" + strconv.Itoa(n) + ",}", n, nil
	}

	m, err := bound(hi)
	if err != nil {
		return "", 0, err
	}
	if m < n {
		return "", 0, repeatError("descending bounds")
	}

	return "{" + strconv.Itoa(n) + "," + strconv.Itoa(m) + "}", m, nil
}

func bound(s string) (int, error) {
	if s == "" {
		return 0, repeatError("missing count")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, repeatError("non-numeric count")
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n > MaxRepeat {
		return 0, repeatError("count exceeds " + strconv.Itoa(MaxRepeat))
	}

	return n, nil
}
