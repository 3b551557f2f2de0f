package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex"
)

var debugCmd = &cobra.Command{
	Use:   "debug PATTERN",
	Short: "Show every stage a pattern goes through",
	Long: `Validate, translate and compile a PRX pattern, printing each stage.

The command reports problems instead of failing on them.

Examples:
  prx debug '[charU&charL&0-9]{8,}'
  prx debug --format json 'string(hello, ci)'`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	d := p.Debug(args[0])

	return output(cmd, d, func(w io.Writer) { printDebug(w, d) })
}

func printDebug(w io.Writer, d *prettyregex.DebugInfo) {
	fmt.Fprintf(w, "original: %s\n", d.Original)
	fmt.Fprintf(w, "parsed:   %s\n", d.Parsed)
	fmt.Fprintf(w, "compiled: %s\n", d.Compiled)
	fmt.Fprintf(w, "engine:   %s\n", d.Engine)
	fmt.Fprintf(w, "valid:    %t\n", d.Valid)

	for _, e := range d.Errors {
		printIssue(w, "error", e)
	}
	for _, e := range d.Warnings {
		printIssue(w, "warning", e)
	}
	for _, s := range d.Suggestions {
		fmt.Fprintf(w, "suggestion: %s\n", s)
	}
	if d.ParseError != nil {
		printIssue(w, "parse error", d.ParseError)
	}
}
