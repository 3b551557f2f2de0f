package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse PATTERN",
	Short: "Print the regular expression a pattern translates to",
	Long: `Translate a PRX pattern and print the resulting regular expression.

The pattern is translated only; run "prx validate" for the pre-flight checks.

Examples:
  prx parse 'start[charU+charL+0-9]+end'
  prx parse --format json 'string(hello, ci)'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var testCmd = &cobra.Command{
	Use:   "test PATTERN SUBJECT",
	Short: "Report whether a subject matches a pattern",
	Long: `Compile a PRX pattern and test it against a subject.

Prints true or false. The exit status is 1 when the subject does not match.

Examples:
  prx test 'startdigit+end' 12345
  prx test --flags i 'string(yes)' YES`,
	Args: cobra.ExactArgs(2),
	RunE: runTest,
}

var matchCmd = &cobra.Command{
	Use:   "match PATTERN SUBJECT",
	Short: "Print the matches of a pattern in a subject",
	Long: `Print every match of a PRX pattern, one per line.

Without --flags every match is printed. With flags that omit g, the first
match is printed followed by its capture groups.

Examples:
  prx match 'digit+' 'a12b3'
  prx match --flags '' '(char)(digit)' 'a1b2'`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

var replaceCmd = &cobra.Command{
	Use:   "replace PATTERN SUBJECT REPLACEMENT",
	Short: "Replace the matches of a pattern in a subject",
	Long: `Replace matches of a PRX pattern and print the result.

The replacement may refer to groups as $1, ${1} or ${name}, and to the whole
match as $&. Without --flags every match is replaced.

Examples:
  prx replace '0-9' 'a1b2c' X
  prx replace '(digit+)' 'a12b3' '<$1>'`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(parseCmd, testCmd, matchCmd, replaceCmd)
}

type parseOutput struct {
	Pattern string `json:"pattern"`
	Regex   string `json:"regex"`
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	re, err := p.Parse(args[0])
	if err != nil {
		return err
	}

	return output(cmd, parseOutput{Pattern: args[0], Regex: re}, func(w io.Writer) {
		fmt.Fprintln(w, re)
	})
}

type testOutput struct {
	Pattern string `json:"pattern"`
	Subject string `json:"subject"`
	Match   bool   `json:"match"`
}

func runTest(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	ok, err := p.Test(args[0], args[1], compileFlags(cmd)...)
	if err != nil {
		return err
	}

	err = output(cmd, testOutput{Pattern: args[0], Subject: args[1], Match: ok}, func(w io.Writer) {
		fmt.Fprintln(w, ok)
	})
	if err != nil {
		return err
	}
	if !ok {
		return errReported
	}

	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	matches, err := p.Match(args[0], args[1], compileFlags(cmd)...)
	if err != nil {
		return err
	}

	return output(cmd, matches, func(w io.Writer) {
		for _, m := range matches {
			fmt.Fprintln(w, m)
		}
	})
}

type replaceOutput struct {
	Result string `json:"result"`
}

func runReplace(cmd *cobra.Command, args []string) error {
	p, err := newPrx(cmd)
	if err != nil {
		return err
	}

	out, err := p.Replace(args[0], args[1], args[2], compileFlags(cmd)...)
	if err != nil {
		return err
	}

	return output(cmd, replaceOutput{Result: out}, func(w io.Writer) {
		fmt.Fprintln(w, out)
	})
}
