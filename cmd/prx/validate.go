package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex"
	prxerrors "github.com/part-avocado/prettyregex/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate PATTERN",
	Short: "Check a pattern and report every problem",
	Long: `Run the pre-flight checks on a PRX pattern.

Errors make the pattern invalid and set exit status 1. Warnings and
suggestions are advisory.

Examples:
  prx validate '[charU+charL'
  prx validate --format json 'start(digit+)*end'`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	r := p.Validate(args[0])
	if err := output(cmd, r, func(w io.Writer) { printResult(w, r) }); err != nil {
		return err
	}
	if !r.Valid {
		return errReported
	}

	return nil
}

func printResult(w io.Writer, r *prettyregex.ValidationResult) {
	if r.Valid {
		fmt.Fprintln(w, "valid")
	} else {
		fmt.Fprintln(w, "invalid")
	}

	for _, e := range r.Errors {
		printIssue(w, "error", e)
	}
	for _, e := range r.Warnings {
		printIssue(w, "warning", e)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "suggestion: %s\n", s)
	}
}

func printIssue(w io.Writer, severity string, e *prxerrors.Error) {
	if e.Pos >= 0 {
		fmt.Fprintf(w, "%s: %s at %d: %s\n", severity, e.Kind.Code(), e.Pos, e.Message)
	} else {
		fmt.Fprintf(w, "%s: %s: %s\n", severity, e.Kind.Code(), e.Message)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(w, "  hint: %s\n", e.Suggestion)
	}
}
