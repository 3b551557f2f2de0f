package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/ranges"
	"github.com/part-avocado/prettyregex/internal/tokens"
	"github.com/part-avocado/prettyregex/regexp"
)

const quantifier = `(\+|\*|\?|\{\d*(?:,\d*)?\})`

var (
	adjacentQuantifiers = regexp.MustCompile(quantifier+`(\s*)`+quantifier, regexp.Flags{})
	nestedQuantifiers   = regexp.MustCompile(quantifier+`.*`+quantifier, regexp.Flags{})
)

func checkClasses(src string, classes []class, r *Result) {
	for _, c := range classes {
		content := src[c.open+1 : c.close]

		if content == "" {
			r.warn(prxerrors.At(prxerrors.KindCharacterClass, c.open, c.close+1, "[]",
				fmt.Sprintf("empty character class at position %d never matches", c.open)).
				WithSuggestion("remove the empty class or add characters to it"))
			continue
		}

		if n := utf8.RuneCountInString(content); n >= LongClassThreshold {
			r.warn(prxerrors.At(prxerrors.KindCharacterClass, c.open, c.close+1, src[c.open:c.close+1],
				fmt.Sprintf("character class at position %d has %d characters", c.open, n)).
				WithSuggestion("use ranges or named classes instead of listing characters"))
		}

		checkRanges(content, c.open+1, r)
	}
}

// checkRanges reports every descending range in one class. It tokenizes the
// content the way the translator does, so "0-9" and the inside of char()
// never count as ranges.
func checkRanges(content string, pos int, r *Result) {
	for i := 0; i < len(content); {
		rest := content[i:]

		if strings.HasPrefix(rest, "char(") {
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return
			}
			i += end + 1
			continue
		}

		if tok, ok := tokens.Match(rest); ok {
			i += len(tok.Name)
			continue
		}

		start, size := utf8.DecodeRuneInString(rest)
		if len(rest) > size+1 && rest[size] == '-' {
			end, endSize := utf8.DecodeRuneInString(rest[size+1:])
			n := size + 1 + endSize

			ok, err := ranges.Check(start, end)
			if err != nil {
				if e, isPRX := err.(*prxerrors.Error); isPRX {
					e.Pos, e.End = pos+i, pos+i+n
					r.errorf(e)
				}
			}
			if ok || err != nil {
				i += n
				continue
			}
		}

		i += size
	}
}

// checkQuantifiers runs over the masked source.
func checkQuantifiers(masked string, r *Result) {
	for _, m := range adjacentQuantifiers.FindAllStringSubmatchIndex(masked, -1) {
		first, gap, second := masked[m[2]:m[3]], masked[m[4]:m[5]], masked[m[6]:m[7]]
		if second == "?" && gap == "" {
			// Lazy modifier.
			continue
		}

		r.warn(prxerrors.At(prxerrors.KindQuantifier, m[0], m[1], masked[m[0]:m[1]],
			fmt.Sprintf("adjacent quantifiers: '%s' followed by '%s'", first, second)).
			WithSuggestion("combine the quantifiers or group the repeated part"))
	}

	if nestedQuantifiers.MatchString(masked) {
		r.warn(prxerrors.New(prxerrors.KindQuantifier,
			"several quantifiers in one pattern may cause heavy backtracking").
			WithSuggestion("simplify the pattern or make the repeated parts mutually exclusive"))
	}
}

// Suggestions returns advisory rewrites for src. They never affect validity.
func Suggestions(src string) []string {
	out := []string{}

	if strings.Contains(src, "[0123456789]") {
		out = append(out, "use [0-9] or digit instead of [0123456789]")
	}
	if strings.Contains(src, "[ABCDEFGHIJKLMNOPQRSTUVWXYZ]") {
		out = append(out, "use charU instead of [ABCDEFGHIJKLMNOPQRSTUVWXYZ]")
	}
	if strings.Contains(src, "[abcdefghijklmnopqrstuvwxyz]") {
		out = append(out, "use charL instead of [abcdefghijklmnopqrstuvwxyz]")
	}
	if strings.Contains(src, "+") && !strings.Contains(src, "start") && !strings.Contains(src, "end") {
		out = append(out, "add start and end anchors to match the entire string")
	}

	return out
}
