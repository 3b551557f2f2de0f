package prettyregex

import (
	"github.com/part-avocado/prettyregex/regexp"
)

// Matcher is a compiled PRX pattern.
type Matcher struct {
	source string
	re     *regexp.Regexp
	flags  Flags
}

// Source returns the PRX pattern the Matcher was compiled from.
func (m *Matcher) Source() string {
	return m.source
}

// String returns the emitted regular expression, without flags.
func (m *Matcher) String() string {
	return m.re.String()
}

// Flags returns the effective flags, including an ignore-case flag forced by
// a case-insensitive string() literal.
func (m *Matcher) Flags() Flags {
	return m.flags
}

// Engine names the backend that runs the Matcher.
func (m *Matcher) Engine() string {
	return m.re.Engine().String()
}

// Regexp returns the underlying compiled expression.
func (m *Matcher) Regexp() *regexp.Regexp {
	return m.re
}

// matches returns the submatch offsets the flags select: the first match,
// or every match when global. Sticky matches must start at offset 0 and each
// must begin where the previous one ended.
func (m *Matcher) matches(s string) [][]int {
	n := 1
	if m.flags.Global {
		n = -1
	}

	if !m.flags.Sticky {
		return m.re.FindAllStringSubmatchIndex(s, n)
	}

	var out [][]int
	end := 0
	for _, loc := range m.re.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] != end {
			break
		}
		out = append(out, loc)
		end = loc[1]
		if n == 1 || loc[0] == loc[1] {
			break
		}
	}

	return out
}

// MatchString reports whether s contains a match. With the sticky flag the
// match must start at the beginning of s.
func (m *Matcher) MatchString(s string) bool {
	if !m.flags.Sticky {
		return m.re.MatchString(s)
	}

	return len(m.matches(s)) > 0
}

// Match returns every matched substring when the global flag is set, and
// otherwise the first match followed by its capture groups. It returns an
// empty slice when nothing matches.
func (m *Matcher) Match(s string) []string {
	locs := m.matches(s)
	if len(locs) == 0 {
		return []string{}
	}

	if m.flags.Global {
		out := make([]string, len(locs))
		for i, loc := range locs {
			out[i] = s[loc[0]:loc[1]]
		}
		return out
	}

	loc := locs[0]
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}

	return out
}

// Replace substitutes repl for the first match, or for every match when the
// global flag is set. repl may refer to groups as $1, ${1}, ${name}, and to
// the whole match as $&; $$ is a literal dollar sign.
func (m *Matcher) Replace(s, repl string) string {
	locs := m.matches(s)
	if len(locs) == 0 {
		return s
	}

	out := make([]byte, 0, len(s))
	last := 0
	for _, loc := range locs {
		out = append(out, s[last:loc[0]]...)
		out = m.re.ExpandString(out, repl, s, loc)
		last = loc[1]
	}

	return string(append(out, s[last:]...))
}
