// Package validator runs the pre-flight checks on PRX source text.
//
// Unlike the parser, which stops at the first problem, the validator walks
// the whole pattern and reports every error and warning it finds. Errors
// make a pattern invalid; warnings are advisory.
package validator

import (
	"errors"
	"fmt"
	"unicode/utf8"

	prxerrors "github.com/part-avocado/prettyregex/errors"
)

// Result is the outcome of [Validator.Validate].
type Result struct {
	Valid       bool               `json:"isValid"`
	Errors      []*prxerrors.Error `json:"errors"`
	Warnings    []*prxerrors.Error `json:"warnings"`
	Suggestions []string           `json:"suggestions"`
}

// Err joins the result's errors, or returns nil for a valid result.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}

	return errors.Join(errs...)
}

func (r *Result) errorf(e *prxerrors.Error) {
	r.Errors = append(r.Errors, e)
}

func (r *Result) warn(e *prxerrors.Error) {
	r.Warnings = append(r.Warnings, e)
}

// Validator checks PRX patterns. It is immutable and safe for concurrent use.
type Validator struct {
	opts options
}

// New returns a Validator configured by opts.
func New(opts ...Option) *Validator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Validator{opts: o}
}

// Validate checks src and collects every issue found.
func (v *Validator) Validate(src string) *Result {
	r := &Result{
		Errors:      []*prxerrors.Error{},
		Warnings:    []*prxerrors.Error{},
		Suggestions: []string{},
	}

	if src == "" {
		r.errorf(prxerrors.New(prxerrors.KindValidation, "pattern must be a non-empty string").
			WithSuggestion("provide a PRX pattern such as 'digit+'"))
		return r
	}
	if !utf8.ValidString(src) {
		r.errorf(prxerrors.New(prxerrors.KindValidation, "pattern is not valid UTF-8").
			WithSuggestion("re-encode the pattern as UTF-8"))
		return r
	}

	if n := utf8.RuneCountInString(src); n > v.opts.maxPatternLength {
		r.warn(prxerrors.New(prxerrors.KindValidation,
			fmt.Sprintf("pattern is very long (%d characters)", n)).
			WithSuggestion("break the pattern into smaller parts"))
	}

	s := scan(src)
	r.Errors = append(r.Errors, s.issues...)

	if s.depth > v.opts.maxNestingDepth {
		r.warn(prxerrors.New(prxerrors.KindValidation,
			fmt.Sprintf("groups are nested %d levels deep", s.depth)).
			WithSuggestion("flatten the pattern or split it into several patterns"))
	}

	checkClasses(src, s.classes, r)
	checkQuantifiers(s.masked, r)

	r.Suggestions = Suggestions(src)
	r.Valid = len(r.Errors) == 0

	return r
}
