package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex"
)

var advancedCmd = &cobra.Command{
	Use:   "advanced PATTERN [SUBJECT]",
	Short: "Expand an advanced pattern",
	Long: `Expand the advanced vocabulary (lookahead(x), namedgroup(n), unicode(L),
email, ipv4, ...) into a regular expression.

With a subject, the expansion is compiled and its matches are printed.
Without --flags every match is printed.

Examples:
  prx advanced 'lookahead(\d)\w+'
  prx advanced 'wordstart\w+' 'hello world'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdvanced,
}

func init() {
	rootCmd.AddCommand(advancedCmd)
}

type advancedOutput struct {
	Pattern        string                        `json:"pattern"`
	Expanded       string                        `json:"expanded"`
	SuggestedFlags string                        `json:"suggestedFlags"`
	Validation     *prettyregex.ValidationResult `json:"validation"`
	Matches        []string                      `json:"matches,omitempty"`
}

func runAdvanced(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	out := advancedOutput{
		Pattern:        args[0],
		Expanded:       p.ParseAdvanced(args[0]),
		SuggestedFlags: prettyregex.SuggestFlags(args[0]),
		Validation:     p.ValidateAdvanced(args[0]),
	}

	if len(args) == 2 {
		flags := compileFlags(cmd)
		if flags == nil {
			flags = []string{"g"}
		}

		m, err := p.CompileAdvanced(args[0], flags...)
		if err != nil {
			return err
		}
		out.Matches = m.Match(args[1])
	}

	return output(cmd, out, func(w io.Writer) {
		fmt.Fprintln(w, out.Expanded)
		if out.SuggestedFlags != "" {
			fmt.Fprintf(w, "suggested flags: %s\n", out.SuggestedFlags)
		}
		for _, e := range out.Validation.Errors {
			printIssue(w, "error", e)
		}
		for _, e := range out.Validation.Warnings {
			printIssue(w, "warning", e)
		}
		for _, m := range out.Matches {
			fmt.Fprintf(w, "match: %s\n", m)
		}
	})
}
