package regexp

import "strings"

// Constructs coregex (RE2 syntax) cannot parse but regexp2 can, or that
// regexp2 rejects with a clearer diagnostic. Based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreTokens = []string{
	// Lookarounds. The PRX "&" operator emits (?=.*X).
	"(?=", "(?!", "(?<=", "(?<!",
	// Atomic, conditional, comment and branch-reset groups
	"(?>", "(?(", "(?#", "(?|",
	// Free-spacing mode
	"(?x",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Named backreferences
	`\k<`, `\k'`, `\k{`, "(?P=",
	// Anchors RE2 lacks
	`\A`, `\Z`, `\G`,
	// Possessive quantifiers
	"++", "*+", "?+", "}+",
}

// needsPCRE reports whether pattern requires the backtracking engine.
//
// \p{..}, \P{..} and \x{..} are deliberately absent: RE2 syntax covers the
// forms PRX emits, and regexp2 does not understand \x{..} at all.
func needsPCRE(pattern string) bool {
	for _, v := range pcreTokens {
		if strings.Contains(pattern, v) {
			return true
		}
	}

	// Numbered backreferences \1..\9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) {
			if next := pattern[i+1]; next >= '1' && next <= '9' {
				return true
			}
		}
		escaped = !escaped
	}

	// Named groups in the (?<name>...) and (?'name'...) spellings. RE2 only
	// knows (?P<name>...).
	for _, prefix := range []string{"(?<", "(?'"} {
		for rest := pattern; ; {
			i := strings.Index(rest, prefix)
			if i < 0 {
				break
			}
			rest = rest[i+len(prefix):]
			if rest != "" && rest[0] != '=' && rest[0] != '!' {
				return true
			}
		}
	}

	return false
}
