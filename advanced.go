package prettyregex

import (
	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/macro"
	"github.com/part-avocado/prettyregex/regexp"
)

// ParseAdvanced expands the advanced vocabulary (lookahead(x),
// namedgroup(n), unicode(L), email, ...) into regex text. The result is not
// PRX; compile it with [Prx.CompileAdvanced].
func (p *Prx) ParseAdvanced(pattern string) string {
	return macro.Expand(pattern)
}

// ValidateAdvanced checks an advanced pattern.
func (p *Prx) ValidateAdvanced(pattern string) *ValidationResult {
	errs, warns := macro.Validate(pattern)
	r := &ValidationResult{
		Valid:       len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		Suggestions: []string{},
	}
	if flags := macro.SuggestFlags(pattern); flags != "" {
		r.Suggestions = append(r.Suggestions, "compile with flags \""+flags+"\"")
	}

	for _, e := range errs {
		p.metrics.RecordIssues("error", kindLabel(e), 1)
	}
	for _, w := range warns {
		p.metrics.RecordIssues("warning", kindLabel(w), 1)
	}

	return r
}

// CompileAdvanced expands pattern and compiles the result with flags.
// Validation follows the same options as [Prx.Compile].
func (p *Prx) CompileAdvanced(pattern string, flags ...string) (*Matcher, error) {
	f, err := ParseFlags(flags...)
	if err != nil {
		return nil, err
	}

	if p.opts.validatePatterns {
		r := p.ValidateAdvanced(pattern)
		p.logIssues(pattern, r)
		if !r.Valid && p.opts.throwOnError {
			p.metrics.RecordCompileError(kindLabel(r.Errors[0]))
			return nil, r.Err()
		}
	}

	expanded := macro.Expand(pattern)
	re, err := regexp.Compile(expanded, regexp.Flags{
		IgnoreCase:   f.IgnoreCase,
		Multiline:    f.Multiline,
		DotAll:       f.DotAll,
		MatchTimeout: p.opts.matchTimeout,
	})
	if err != nil {
		perr := prxerrors.Newf(prxerrors.KindParse, "regex engine rejected %q", expanded).Wrap(err)
		p.metrics.RecordCompileError(kindLabel(perr))
		return nil, perr
	}

	p.metrics.RecordCompile(re.Engine().String())
	p.logger.Debug("compiled advanced pattern",
		"pattern", pattern, "regex", expanded, "flags", f.String(), "engine", re.Engine().String())

	return &Matcher{source: pattern, re: re, flags: f}, nil
}

// SuggestFlags returns the flags an advanced pattern most likely needs.
func SuggestFlags(pattern string) string {
	return macro.SuggestFlags(pattern)
}
