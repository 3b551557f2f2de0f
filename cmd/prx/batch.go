package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex/internal/patternfile"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Compile every pattern of a file",
	Long: `Compile the patterns of a file, one per line.

Blank lines and lines starting with # are skipped. Every pattern is compiled
even after a failure; the exit status is 1 when any pattern fails.

Examples:
  prx batch patterns.prx
  prx batch --lenient --format json patterns.prx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

type batchResult struct {
	Line    int    `json:"line"`
	Pattern string `json:"pattern"`
	Regex   string `json:"regex,omitempty"`
	Engine  string `json:"engine,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	f, err := patternfile.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := f.Entries()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	logger.Debug("read pattern file",
		"file", f.Name(), "bytes", f.Len(), "mapped", f.Mapped(), "patterns", len(entries))

	results := make([]batchResult, 0, len(entries))
	failed := 0
	for _, e := range entries {
		r := batchResult{Line: e.Line, Pattern: e.Pattern}

		m, err := p.Compile(e.Pattern, compileFlags(cmd)...)
		if err != nil {
			r.Error = err.Error()
			failed++
		} else {
			r.Regex, r.Engine = m.String(), m.Engine()
		}
		results = append(results, r)
	}

	err = output(cmd, results, func(w io.Writer) {
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(w, "%d\terror\t%s\n", r.Line, r.Error)
				continue
			}
			fmt.Fprintf(w, "%d\tok\t%s\n", r.Line, r.Regex)
		}
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}

	return nil
}
