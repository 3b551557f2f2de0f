package literal

import "strings"

// Context classifies where a string() literal sits in the source.
type Context uint8

const (
	// Standalone is a literal with no enclosing group, alternation or
	// neighbouring literal.
	Standalone Context = iota
	// Sequence is a literal adjacent to another string() literal, ignoring
	// whitespace and parentheses.
	Sequence
	// Alternation is a literal sharing its innermost group (or the top
	// level) with a "|" when that group is not quantified.
	Alternation
	// QuantifiedGroup is a literal whose innermost group is immediately
	// followed by a quantifier.
	QuantifiedGroup
	// Group is a literal inside any other parenthesized group.
	Group
)

var contextNames = [...]string{
	Standalone:      "standalone",
	Sequence:        "sequence",
	Alternation:     "alternation",
	QuantifiedGroup: "quantified-group",
	Group:           "group",
}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}

	return "unknown"
}

type span struct{ start, end int }

func (s span) contains(pos int) bool { return pos >= s.start && pos < s.end }

type group struct {
	open, close int
	quantified  bool
}

type entry struct {
	span
	group int // innermost enclosing group, -1 at top level
}

// Index records the bracket, group and alternation structure of a PRX source
// in one forward pass so the boundary policy can be answered per literal
// without rescanning the text.
type Index struct {
	src      string
	classes  []span
	literals []entry
	groups   []group
	alts     []int // enclosing group of each "|", -1 at top level
}

// NewIndex scans src. Constructs that are never closed extend to the end of
// the source; the parser reports them.
func NewIndex(src string) *Index {
	ix := &Index{src: src}

	var stack []int
	top := func() int {
		if len(stack) == 0 {
			return -1
		}
		return stack[len(stack)-1]
	}

	for i := 0; i < len(src); {
		rest := src[i:]

		switch {
		case rest[0] == '[':
			end := closeAfter(src, i+1, ']')
			ix.classes = append(ix.classes, span{i, end})
			i = end

		case strings.HasPrefix(rest, open):
			end := closeAfter(src, i+len(open), ')')
			ix.literals = append(ix.literals, entry{span: span{i, end}, group: top()})
			i = end

		case strings.HasPrefix(rest, "char("):
			i = closeAfter(src, i+len("char("), ')')

		case rest[0] == '(':
			stack = append(stack, len(ix.groups))
			ix.groups = append(ix.groups, group{open: i, close: -1})
			i++

		case rest[0] == ')':
			if g := top(); g >= 0 {
				stack = stack[:len(stack)-1]
				ix.groups[g].close = i
				ix.groups[g].quantified = quantifierAt(src, i+1)
			}
			i++

		case rest[0] == '|':
			ix.alts = append(ix.alts, top())
			i++

		default:
			i++
		}
	}

	return ix
}

// closeAfter returns the offset just past the first c at or after from, or
// len(src) when there is none.
func closeAfter(src string, from int, c byte) int {
	if from > len(src) {
		return len(src)
	}
	if j := strings.IndexByte(src[from:], c); j >= 0 {
		return from + j + 1
	}

	return len(src)
}

func quantifierAt(src string, i int) bool {
	return i < len(src) && strings.IndexByte("+*?{", src[i]) >= 0
}

// InClass reports whether pos lies inside a "[...]" expression.
func (ix *Index) InClass(pos int) bool {
	for _, c := range ix.classes {
		if c.contains(pos) {
			return true
		}
	}

	return false
}

func (ix *Index) literalAt(pos int) (entry, bool) {
	for _, l := range ix.literals {
		if l.start == pos {
			return l, true
		}
	}

	return entry{}, false
}

func (ix *Index) endsLiteral(pos int) bool {
	for _, l := range ix.literals {
		if l.end-1 == pos {
			return true
		}
	}

	return false
}

// Context classifies the string() literal starting at pos. Sequence takes
// precedence over Alternation.
func (ix *Index) Context(pos int) Context {
	lit, ok := ix.literalAt(pos)
	if !ok {
		return Standalone
	}

	if ix.inSequence(lit) {
		return Sequence
	}

	quantified := lit.group >= 0 && ix.groups[lit.group].quantified
	if !quantified {
		for _, g := range ix.alts {
			if g == lit.group {
				return Alternation
			}
		}
	}

	switch {
	case quantified:
		return QuantifiedGroup
	case lit.group >= 0:
		return Group
	default:
		return Standalone
	}
}

func (ix *Index) inSequence(lit entry) bool {
	for p := lit.start - 1; p >= 0; p-- {
		if ix.endsLiteral(p) {
			return true
		}
		if !skippable(ix.src[p]) {
			break
		}
	}

	for p := lit.end; p < len(ix.src); p++ {
		if _, ok := ix.literalAt(p); ok {
			return true
		}
		if !skippable(ix.src[p]) {
			break
		}
	}

	return false
}

func skippable(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')':
		return true
	}

	return false
}
