package regexp

import (
	"strconv"
	"strings"
	"time"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Engine identifies the backend a [Regexp] was compiled with.
type Engine uint8

const (
	// EngineCore is coregex, the RE2-compatible backend.
	EngineCore Engine = iota
	// EnginePCRE is regexp2, used for lookarounds and other backtracking-only
	// constructs.
	EnginePCRE
)

// String returns the backend's library name.
func (e Engine) String() string {
	if e == EnginePCRE {
		return "regexp2"
	}

	return "coregex"
}

// Flags are the pattern-wide modes applied at compile time.
type Flags struct {
	IgnoreCase bool // i
	Multiline  bool // m
	DotAll     bool // s

	// MatchTimeout bounds a single regexp2 match. Zero means no limit.
	// coregex runs in linear time and ignores it.
	MatchTimeout time.Duration
}

func (f Flags) prefix() string {
	if !f.IgnoreCase && !f.Multiline && !f.DotAll {
		return ""
	}

	var b strings.Builder
	b.WriteString("(?")
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}
	if f.DotAll {
		b.WriteByte('s')
	}
	b.WriteByte(')')

	return b.String()
}

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (backtracking) depending on the pattern
// features detected at compile time.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp
	names   []string
}

// Compile parses pattern with the modes in flags. Patterns that need
// backtracking-only features (see needsPCRE) are compiled with regexp2;
// everything else uses coregex.
func Compile(pattern string, flags Flags) (*Regexp, error) {
	full := flags.prefix() + pattern

	r := &Regexp{pattern: pattern, flags: flags}
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(full, regexp2.None)
		if err != nil {
			return nil, err
		}
		if flags.MatchTimeout > 0 {
			re.MatchTimeout = flags.MatchTimeout
		}
		r.pcre = re
	} else {
		re, err := coregex.Compile(full)
		if err != nil {
			return nil, err
		}
		r.core = re
	}
	r.names = r.subexpNames()

	return r, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, flags Flags) *Regexp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}

	return re
}

// String returns the pattern passed to Compile, without the flag prefix.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the modes the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Engine reports which backend executes the Regexp.
func (r *Regexp) Engine() Engine {
	if r.pcre != nil {
		return EnginePCRE
	}

	return EngineCore
}

// MatchString reports whether s contains any match of the Regexp. A regexp2
// timeout counts as no match.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.FindStringIndex(s) != nil
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns the byte offsets of the leftmost match in s, or nil.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match in s and its submatches.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(s, m.Groups())
}

// FindStringSubmatchIndex returns the byte offset pairs of the leftmost match
// in s and its submatches. Unmatched groups are reported as -1, -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

// FindAllString returns up to n successive matches in s; n < 0 means all.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	var out []string
	r.eachPCREMatch(s, n, func(m *regexp2.Match) {
		out = append(out, m.String())
	})

	return out
}

// FindAllStringIndex returns the byte offsets of up to n successive matches.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}

	var out [][]int
	r.eachPCREMatch(s, n, func(m *regexp2.Match) {
		start, end := runeRangeToByte(s, m.Index, m.Length)
		out = append(out, []int{start, end})
	})

	return out
}

// FindAllStringSubmatchIndex returns the submatch offsets of up to n
// successive matches.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringSubmatchIndex(s, n)
	}

	var out [][]int
	r.eachPCREMatch(s, n, func(m *regexp2.Match) {
		out = append(out, groupsToIndexes(s, m.Groups()))
	})

	return out
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}

	if n == 0 {
		return nil
	}

	parts := make([]string, 0)
	last := 0
	count := 0

	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count+1 >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		count++

		m, err = r.pcre.FindNextMatch(m)
	}

	parts = append(parts, s[last:])
	return parts
}

// NumSubexp returns the number of parenthesized subexpressions.
func (r *Regexp) NumSubexp() int {
	return len(r.names) - 1
}

// SubexpNames returns the names of the parenthesized subexpressions; the
// name for the first sub-expression is names[1]. Unnamed groups have "".
func (r *Regexp) SubexpNames() []string {
	return r.names
}

func (r *Regexp) subexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}

	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		name := r.pcre.GroupNameFromNumber(i)
		if name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}

func (r *Regexp) eachPCREMatch(s string, n int, fn func(*regexp2.Match)) {
	count := 0
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && count >= n {
			return
		}
		fn(m)
		count++
		m, err = r.pcre.FindNextMatch(m)
	}
}

func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out[i] = s[start:end]
	}
	return out
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

// regexp2 reports rune offsets; callers of this package work in bytes.
func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
