package validator

import (
	"fmt"
	"strings"

	prxerrors "github.com/part-avocado/prettyregex/errors"
)

var literalOpeners = []string{"string(", "char("}

var closers = map[byte]byte{'(': ')', '{': '}', '[': ']'}

// class is a closed "[...]" expression, by the offsets of its brackets.
type class struct{ open, close int }

type opener struct {
	c   byte
	pos int
}

// structure is what one pass over the source learns about it.
type structure struct {
	issues  []*prxerrors.Error
	classes []class
	// masked is the source with class contents and literal payloads
	// replaced by '_', so that characters matched literally are not
	// mistaken for quantifiers.
	masked string
	depth  int
}

// scan checks delimiter balance. Class contents and char()/string()
// payloads are opaque, as they are to the parser.
func scan(src string) structure {
	var (
		st     structure
		stack  []opener
		groups int
	)
	masked := []byte(src)

	for i := 0; i < len(src); {
		if lit := literalOpener(src[i:]); lit != "" {
			body := i + len(lit)
			end := strings.IndexByte(src[body:], ')')
			if end < 0 {
				st.issues = append(st.issues, unclosed('(', body-1, src))
				mask(masked, body, len(src))
				break
			}
			end += body
			mask(masked, body, end)
			i = end + 1
			continue
		}

		switch c := src[i]; c {
		case '[':
			end := strings.IndexByte(src[i+1:], ']')
			if end < 0 {
				st.issues = append(st.issues, unclosed('[', i, src))
				mask(masked, i+1, len(src))
				i = len(src)
				continue
			}
			end += i + 1
			st.classes = append(st.classes, class{open: i, close: end})
			mask(masked, i+1, end)
			i = end + 1
			continue

		case '(', '{':
			stack = append(stack, opener{c: c, pos: i})
			if c == '(' {
				groups++
				st.depth = max(st.depth, groups)
			}

		case ')', '}', ']':
			if len(stack) == 0 {
				st.issues = append(st.issues, prxerrors.At(prxerrors.KindValidation, i, i+1, string(c),
					fmt.Sprintf("unexpected closing delimiter '%c' at position %d", c, i)).
					WithSuggestion(fmt.Sprintf("remove the '%c' or add a matching opening delimiter", c)))
				break
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.c == '(' {
				groups--
			}
			if closers[top.c] != c {
				st.issues = append(st.issues, prxerrors.At(prxerrors.KindValidation, top.pos, i+1, src[top.pos:i+1],
					fmt.Sprintf("mismatched delimiters: '%c' at position %d and '%c' at position %d", top.c, top.pos, c, i)).
					WithSuggestion(fmt.Sprintf("close '%c' with '%c'", top.c, closers[top.c])))
			}
		}
		i++
	}

	for _, o := range stack {
		st.issues = append(st.issues, unclosed(o.c, o.pos, src))
	}
	st.masked = string(masked)

	return st
}

func literalOpener(s string) string {
	for _, lit := range literalOpeners {
		if strings.HasPrefix(s, lit) {
			return lit
		}
	}

	return ""
}

func unclosed(c byte, pos int, src string) *prxerrors.Error {
	return prxerrors.At(prxerrors.KindValidation, pos, len(src), src[pos:],
		fmt.Sprintf("unclosed delimiter '%c' at position %d", c, pos)).
		WithSuggestion(fmt.Sprintf("add a closing '%c' to match the opening '%c'", closers[c], c))
}

func mask(b []byte, from, to int) {
	for i := from; i < to; i++ {
		b[i] = '_'
	}
}
