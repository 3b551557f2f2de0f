// Package prettyregex compiles PRX, a readable pattern notation, into
// regular expressions.
//
// PRX spells character categories with names and literals with explicit
// markers, so that the meaning of a pattern does not depend on escaping:
//
//	charU charL char digit 0-9    uppercase, lowercase, any letter, digit
//	space tab newline             the characters themselves
//	whitespace notwhitespace      \s \S
//	wordchar notwordchar any      \w \W .
//	start end word notword        ^ $ \b \B
//	char(x)                       x, matched literally
//	string(text[, ci|cs|mc])      text, matched literally
//	[A+B]                         any character of A or B
//	[A&B]                         A and B must both occur; matches one of either
//	+ * ? {n} {n,} {n,m} {,m}     quantifiers; a trailing ? makes them lazy
//	( ) |                         grouping and alternation
//
// For example
//
//	m, err := prettyregex.Compile("start[charU&charL&0-9]{8,}end")
//
// compiles to ^(?=.*[A-Z])(?=.*[a-z])(?=.*[0-9])[A-Za-z0-9]{8,}$ and accepts
// passwords with at least one uppercase letter, lowercase letter and digit.
//
// Patterns that need lookarounds run on a backtracking engine; all others
// run on an RE2-compatible engine with linear-time matching. A [Prx] holds
// the options and is safe for concurrent use; the package-level functions use
// a default one.
package prettyregex
