package prettyregex

import (
	"log/slog"
	"strings"
	"time"

	"go.dw1.io/fastcache"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/literal"
	"github.com/part-avocado/prettyregex/internal/metrics"
	"github.com/part-avocado/prettyregex/internal/parser"
	"github.com/part-avocado/prettyregex/internal/validator"
	"github.com/part-avocado/prettyregex/regexp"
)

// ValidationResult is the outcome of [Prx.Validate].
type ValidationResult = validator.Result

// translation is a cached parse result.
type translation struct {
	Pattern     string
	Insensitive bool
}

// Prx compiles PRX patterns. It is immutable after [New] and safe for
// concurrent use.
type Prx struct {
	opts      options
	logger    *slog.Logger
	validator *validator.Validator
	cache     *fastcache.Cache[string, translation]
	metrics   *metrics.Metrics
}

// New returns a Prx configured by opts.
func New(opts ...Option) *Prx {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Prx{
		opts:      o,
		logger:    o.logger,
		validator: validator.New(validator.WithMaxPatternLength(o.maxPatternLength)),
		metrics:   metrics.New(o.registerer),
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if o.cacheSize > 0 {
		p.cache = fastcache.New[string, translation](o.cacheSize)
	}

	return p
}

// Parse translates pattern into regular-expression text. It does not run
// the validator.
func (p *Prx) Parse(pattern string) (string, error) {
	t, err := p.translate(pattern)
	if err != nil {
		return "", err
	}

	return t.Pattern, nil
}

func (p *Prx) translate(pattern string) (translation, error) {
	if p.cache != nil {
		t, ok := p.cache.Get(pattern)
		p.metrics.RecordCacheLookup(ok)
		if ok {
			return t, nil
		}
	}

	start := time.Now()
	out, err := parser.Parse(pattern)
	p.metrics.ObserveParse(time.Since(start))
	if err != nil {
		p.metrics.RecordCompileError(kindLabel(err))
		return translation{}, err
	}

	t := translation{Pattern: out, Insensitive: literal.HasCaseInsensitive(pattern)}
	if p.cache != nil {
		p.cache.Set(pattern, t)
	}

	return t, nil
}

// Compile validates and translates pattern, then compiles the result with
// flags, given as letters such as "gi".
//
// Validation errors are returned joined when ThrowOnError is on; otherwise
// they are logged and the pattern is still translated. A case-insensitive
// string() literal anywhere in the pattern turns on the i flag.
func (p *Prx) Compile(pattern string, flags ...string) (*Matcher, error) {
	f, err := ParseFlags(flags...)
	if err != nil {
		return nil, err
	}

	if p.opts.validatePatterns {
		r := p.Validate(pattern)
		p.logIssues(pattern, r)
		if !r.Valid && p.opts.throwOnError {
			p.metrics.RecordCompileError(kindLabel(r.Errors[0]))
			return nil, r.Err()
		}
	}

	t, err := p.translate(pattern)
	if err != nil {
		return nil, err
	}
	if t.Insensitive {
		f.IgnoreCase = true
	}

	re, err := regexp.Compile(t.Pattern, regexp.Flags{
		IgnoreCase:   f.IgnoreCase,
		Multiline:    f.Multiline,
		DotAll:       f.DotAll,
		MatchTimeout: p.opts.matchTimeout,
	})
	if err != nil {
		perr := prxerrors.Newf(prxerrors.KindParse, "regex engine rejected %q", t.Pattern).Wrap(err)
		p.metrics.RecordCompileError(kindLabel(perr))
		return nil, perr
	}

	p.metrics.RecordCompile(re.Engine().String())
	p.logger.Debug("compiled pattern",
		"pattern", pattern, "regex", t.Pattern, "flags", f.String(), "engine", re.Engine().String())

	return &Matcher{source: pattern, re: re, flags: f}, nil
}

// Test reports whether subject contains a match of pattern.
func (p *Prx) Test(pattern, subject string, flags ...string) (bool, error) {
	m, err := p.Compile(pattern, flags...)
	if err != nil {
		return false, err
	}

	return m.MatchString(subject), nil
}

// Match returns the matches of pattern in subject; see [Matcher.Match].
// Without flags it behaves as if given "g".
func (p *Prx) Match(pattern, subject string, flags ...string) ([]string, error) {
	m, err := p.Compile(pattern, defaultGlobal(flags)...)
	if err != nil {
		return nil, err
	}

	return m.Match(subject), nil
}

// Replace substitutes repl for matches of pattern in subject; see
// [Matcher.Replace]. Without flags it behaves as if given "g".
func (p *Prx) Replace(pattern, subject, repl string, flags ...string) (string, error) {
	m, err := p.Compile(pattern, defaultGlobal(flags)...)
	if err != nil {
		return "", err
	}

	return m.Replace(subject, repl), nil
}

// Validate runs every pre-flight check on pattern and reports all issues.
func (p *Prx) Validate(pattern string) *ValidationResult {
	r := p.validator.Validate(pattern)
	for _, e := range r.Errors {
		p.metrics.RecordIssues("error", kindLabel(e), 1)
	}
	for _, w := range r.Warnings {
		p.metrics.RecordIssues("warning", kindLabel(w), 1)
	}

	return r
}

func (p *Prx) logIssues(pattern string, r *ValidationResult) {
	if !p.opts.logWarnings {
		return
	}

	for _, w := range r.Warnings {
		p.logger.Warn(w.Message,
			"pattern", pattern, "kind", w.Kind.Code(), "pos", w.Pos, "suggestion", w.Suggestion)
	}
	if p.opts.throwOnError {
		return
	}
	for _, e := range r.Errors {
		p.logger.Warn("ignoring validation error: "+e.Message,
			"pattern", pattern, "kind", e.Kind.Code(), "pos", e.Pos, "suggestion", e.Suggestion)
	}
}

func defaultGlobal(flags []string) []string {
	if len(flags) == 0 {
		return []string{"g"}
	}

	return flags
}

// kindLabel is the metric label for err's kind, e.g. "character_class".
func kindLabel(err error) string {
	k, ok := prxerrors.KindOf(err)
	if !ok {
		return "unknown"
	}

	return strings.TrimSuffix(strings.ToLower(k.Code()), "_error")
}

// oneShot returns the default [Prx] used by the package-level functions.
// It is built per call, so it skips the translation cache.
func oneShot() *Prx {
	return New(WithCacheSize(0))
}

// Parse translates pattern with a default [Prx].
func Parse(pattern string) (string, error) {
	return oneShot().Parse(pattern)
}

// Compile compiles pattern with a default [Prx].
func Compile(pattern string, flags ...string) (*Matcher, error) {
	return oneShot().Compile(pattern, flags...)
}

// MustCompile is like [Compile] but panics on error.
func MustCompile(pattern string, flags ...string) *Matcher {
	m, err := Compile(pattern, flags...)
	if err != nil {
		panic(err)
	}

	return m
}

// Test reports whether subject matches pattern, using a default [Prx].
func Test(pattern, subject string, flags ...string) (bool, error) {
	return oneShot().Test(pattern, subject, flags...)
}

// Match returns the matches of pattern in subject, using a default [Prx].
func Match(pattern, subject string, flags ...string) ([]string, error) {
	return oneShot().Match(pattern, subject, flags...)
}

// Replace substitutes repl for matches of pattern, using a default [Prx].
func Replace(pattern, subject, repl string, flags ...string) (string, error) {
	return oneShot().Replace(pattern, subject, repl, flags...)
}

// Validate checks pattern with a default [Prx].
func Validate(pattern string) *ValidationResult {
	return oneShot().Validate(pattern)
}
