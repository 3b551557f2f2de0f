// Package macro expands the advanced PRX vocabulary into regex text.
//
// The advanced stage is a separate pass over already-regex-like input: it
// rewrites call forms such as lookahead(x) and namedgroup(n), then replaces
// whole words found in [Table]. The output is not run through the PRX
// parser.
package macro

import (
	"strings"

	"github.com/part-avocado/prettyregex/regexp"
)

// Table maps an advanced keyword to the regex fragment it stands for.
// Keywords are replaced only as whole words.
var Table = map[string]string{
	// Groups
	"group":  "(?:",
	"atomic": "(?>",

	// Conditionals
	"if":   "(?(",
	"then": ")",
	"else": "|",

	// Unicode categories
	"letter":      `\p{L}`,
	"mark":        `\p{M}`,
	"number":      `\p{N}`,
	"punctuation": `\p{P}`,
	"symbol":      `\p{S}`,
	"separator":   `\p{Z}`,
	"other":       `\p{C}`,

	// Inline modes
	"ignorecase":   "(?i)",
	"matchcase":    "(?-i)",
	"multiline":    "(?m)",
	"singleline":   "(?s)",
	"nomultiline":  "(?-m)",
	"nosingleline": "(?-s)",
	"freeSpacing":  "(?x)",

	// Recursion and backtracking control
	"recurse": "(?R)",
	"cut":     "(*COMMIT)",
	"fail":    "(*FAIL)",
	"accept":  "(*ACCEPT)",

	// Word edges
	"wordstart": `\b(?=\w)`,
	"wordend":   `(?<=\w)\b`,

	// Character sets. The wide ranges are written with literal runes, which
	// both engines accept.
	"ascii":  `[\x00-\x7F]`,
	"latin":  "[\\x00-ɏ]",
	"emoji":  "[\U0001F600-\U0001F64F]",
	"hex":    "[0-9A-Fa-f]",
	"octal":  "[0-7]",
	"binary": "[01]",

	// Canned patterns
	"email":      `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`,
	"url":        `https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)`,
	"ipv4":       `\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`,
	"ipv6":       `\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`,
	"phone":      `\b(?:\+?1[-.]?)?(?:\(?[0-9]{3}\)?[-.]?)?[0-9]{3}[-.]?[0-9]{4}\b`,
	"creditcard": `\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|3[0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})\b`,
	"ssn":        `\b[0-9]{3}-?[0-9]{2}-?[0-9]{4}\b`,
	"zipcode":    `\b[0-9]{5}(?:-[0-9]{4})?\b`,
	"time24":     `\b(?:[01]?[0-9]|2[0-3]):[0-5][0-9](?::[0-5][0-9])?\b`,
	"time12":     `\b(?:1[0-2]|0?[1-9]):[0-5][0-9](?::[0-5][0-9])?\s?(?:[AaPp][Mm])\b`,
	"date":       `\b(?:(?:19|20)[0-9]{2}[-/.](?:0[1-9]|1[0-2])[-/.](?:0[1-9]|[12][0-9]|3[01]))\b`,
	"hexcolor":   `#(?:[0-9a-fA-F]{3}){1,2}\b`,
	"uuid":       `\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`,
}

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func newRewrite(pattern, repl string) rewrite {
	return rewrite{re: regexp.MustCompile(pattern, regexp.Flags{}), repl: repl}
}

// Call forms, applied in order. The negated forms go first so that
// "neglookahead(" is not consumed as "lookahead(".
var rewrites = []rewrite{
	newRewrite(`possessive([+*?])`, "${1}+"),
	newRewrite(`namedgroup\(([^)]+)\)`, "(?<${1}>"),
	newRewrite(`neglookahead\(([^)]+)\)`, "(?!${1})"),
	newRewrite(`neglookbehind\(([^)]+)\)`, "(?<!${1})"),
	newRewrite(`lookahead\(([^)]+)\)`, "(?=${1})"),
	newRewrite(`lookbehind\(([^)]+)\)`, "(?<=${1})"),
	newRewrite(`notunicode\(([^)]+)\)`, `\P{${1}}`),
	newRewrite(`unicode\(([^)]+)\)`, `\p{${1}}`),
	newRewrite(`comment\(([^)]*)\)`, "(?#${1})"),
	newRewrite(`if\(([^)]+)\)then\(([^)]+)\)else\(([^)]+)\)`, "(?(${1})${2}|${3})"),
	newRewrite(`if\(([^)]+)\)then\(([^)]+)\)`, "(?(${1})${2})"),
	newRewrite(`subroutine\((\d+)\)`, "(?${1})"),
}

// Expand rewrites the advanced vocabulary in src into regex text.
func Expand(src string) string {
	out := src
	for _, rw := range rewrites {
		out = rw.re.ReplaceAllString(out, rw.repl)
	}

	return replaceWords(out)
}

func isWordByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// replaceWords substitutes every maximal run of word bytes that is a
// keyword. Runs are never split, so "hexcolor" is not read as "hex".
func replaceWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if !isWordByte(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}

		j := i
		for j < len(s) && isWordByte(s[j]) {
			j++
		}
		if repl, ok := Table[s[i:j]]; ok {
			b.WriteString(repl)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}

	return b.String()
}
