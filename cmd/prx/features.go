package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the supported syntax",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := prettyregex.Features()

		return output(cmd, f, func(w io.Writer) { printFeatures(w, f) })
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func printFeatures(w io.Writer, f prettyregex.FeatureSet) {
	fmt.Fprintf(w, "PRX %s\n\nNamed classes:\n", f.Version)
	for _, c := range f.NamedClasses {
		fmt.Fprintf(w, "  %-16s %s\n", c.Name, c.Regex)
	}

	fmt.Fprintln(w, "\nSyntax:")
	for _, s := range f.Syntax {
		fmt.Fprintf(w, "  %-20s %s\n", s.Form, s.Description)
	}
	fmt.Fprintf(w, "  counts are limited to %d\n", f.MaxRepeat)

	fmt.Fprintln(w, "\nFlags:")
	for _, s := range f.Flags {
		fmt.Fprintf(w, "  %-4s %s\n", s.Form, s.Description)
	}

	fmt.Fprintf(w, "\nAdvanced keywords:\n  %s\n", strings.Join(f.Advanced, " "))
}
