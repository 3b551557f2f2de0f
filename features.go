package prettyregex

import (
	"sort"

	"github.com/part-avocado/prettyregex/internal/macro"
	"github.com/part-avocado/prettyregex/internal/parser"
	"github.com/part-avocado/prettyregex/internal/tokens"
)

// Version is the release of the PRX notation this package implements.
const Version = "1.0.0"

// NamedClass is one entry of the named-class table.
type NamedClass struct {
	Name  string `json:"name"`
	Regex string `json:"regex"`
}

// Syntax describes one construct of the notation.
type Syntax struct {
	Form        string `json:"form"`
	Description string `json:"description"`
}

// FeatureSet lists what the notation supports.
type FeatureSet struct {
	Version      string       `json:"version"`
	NamedClasses []NamedClass `json:"namedClasses"`
	Syntax       []Syntax     `json:"syntax"`
	Flags        []Syntax     `json:"flags"`
	MaxRepeat    int          `json:"maxRepeat"`
	Advanced     []string     `json:"advanced"`
}

// Features describes the supported syntax.
func Features() FeatureSet {
	all := tokens.All()
	classes := make([]NamedClass, len(all))
	for i, t := range all {
		classes[i] = NamedClass{Name: t.Name, Regex: t.Replacement}
	}

	advanced := make([]string, 0, len(macro.Table))
	for k := range macro.Table {
		advanced = append(advanced, k)
	}
	sort.Strings(advanced)

	return FeatureSet{
		Version:      Version,
		NamedClasses: classes,
		Syntax: []Syntax{
			{"char(x)", "the character x, matched literally"},
			{"string(text)", "the text, matched literally"},
			{"string(text, ci)", "the text in any case (also caseinsensitive, nocase)"},
			{"string(text, cs)", "the text in exact case (also casesensitive, case)"},
			{"string(text, mc)", "each letter in either case (also multicase)"},
			{"[a-z]", "a character range; a-E spans both cases"},
			{"[A+B]", "any character of A or B"},
			{"[A&B]", "requires A and B somewhere, then matches one of either"},
			{"+ * ?", "one or more, zero or more, optional; a trailing ? makes it lazy"},
			{"{n} {n,} {n,m} {,m}", "counted repetition"},
			{"( ) |", "grouping and alternation"},
		},
		Flags: []Syntax{
			{"g", "every match"},
			{"i", "ignore case"},
			{"m", "start and end match at line breaks"},
			{"s", "any matches newlines"},
			{"u", "unicode; always on"},
			{"y", "sticky: matches start at 0 and follow each other"},
		},
		MaxRepeat: parser.MaxRepeat,
		Advanced:  advanced,
	}
}
