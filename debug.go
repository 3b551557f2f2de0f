package prettyregex

import (
	"errors"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/json"
	"github.com/part-avocado/prettyregex/regexp"
)

// DebugInfo shows every stage a pattern goes through. Compiled is the
// pattern in /regex/flags notation. ParseError is set when translation or
// engine compilation failed.
type DebugInfo struct {
	Original    string             `json:"original"`
	Parsed      string             `json:"parsed"`
	Compiled    string             `json:"compiled"`
	Flags       string             `json:"flags"`
	Engine      string             `json:"engine,omitempty"`
	Valid       bool               `json:"isValid"`
	Errors      []*prxerrors.Error `json:"errors"`
	Warnings    []*prxerrors.Error `json:"warnings"`
	Suggestions []string           `json:"suggestions"`
	ParseError  *prxerrors.Error   `json:"parseError,omitempty"`
}

// JSON encodes d as indented JSON.
func (d *DebugInfo) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Debug validates, translates and compiles pattern, recording each stage.
// It never fails; problems are reported in the result.
func (p *Prx) Debug(pattern string) *DebugInfo {
	r := p.Validate(pattern)
	d := &DebugInfo{
		Original:    pattern,
		Valid:       r.Valid,
		Errors:      r.Errors,
		Warnings:    r.Warnings,
		Suggestions: r.Suggestions,
	}

	t, err := p.translate(pattern)
	if err != nil {
		d.ParseError = asIssue(err)
		return d
	}
	d.Parsed = t.Pattern

	var f Flags
	if t.Insensitive {
		f.IgnoreCase = true
	}
	d.Flags = f.String()

	re, err := regexp.Compile(t.Pattern, regexp.Flags{IgnoreCase: f.IgnoreCase})
	if err != nil {
		d.ParseError = prxerrors.New(prxerrors.KindParse, "regex engine rejected the pattern").Wrap(err)
		return d
	}
	d.Compiled = "/" + t.Pattern + "/" + d.Flags
	d.Engine = re.Engine().String()

	return d
}

// Debug reports the stages of pattern using a default [Prx].
func Debug(pattern string) *DebugInfo {
	return oneShot().Debug(pattern)
}

func asIssue(err error) *prxerrors.Error {
	var e *prxerrors.Error
	if errors.As(err, &e) {
		return e
	}

	return prxerrors.New(prxerrors.KindParse, err.Error()).Wrap(err)
}
