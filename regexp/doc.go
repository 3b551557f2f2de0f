// Package regexp is the matching backend for compiled PRX patterns.
//
// PRX only emits pattern text; this package picks the engine that runs it.
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// unless they need constructs only a backtracking engine can execute, most
// notably the (?=.*X) lookaheads produced by the PRX "&" operator. Those are
// compiled with [regexp2].
//
// Offsets returned by every method are byte offsets regardless of engine,
// and replacement templates use one syntax (see [Regexp.ExpandString]).
package regexp
