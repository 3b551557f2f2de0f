package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/part-avocado/prettyregex"
	"github.com/part-avocado/prettyregex/json"
)

var (
	// Global flags
	cfgFile    string
	flagLetter string
	format     string
	noValidate bool
	lenient    bool
	verbose    bool
	logFormat  string
)

// errReported is returned after a command has already printed why it
// failed, so that only the exit status is left to set.
var errReported = errors.New("failed")

var rootCmd = &cobra.Command{
	Use:   "prx",
	Short: "Compile readable PRX patterns into regular expressions",
	Long: `prx translates PRX patterns into regular expressions and runs them.

PRX names character categories (charU, digit, wordchar, ...) and marks
literals explicitly (char(x), string(text)), so patterns read without
escaping. See "prx features" for the full vocabulary.

Settings come from --config (YAML), then the PRX_* environment variables,
then the command-line flags.`,
	Version:           prettyregex.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: checkGlobalFlags,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&flagLetter, "flags", "f", "", "regex flags: g, i, m, s, u, y")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noValidate, "no-validate", false, "skip pre-flight validation")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "log validation errors instead of failing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
}

func checkGlobalFlags(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported output format %q (expected text or json)", format)
	}
	if logFormat != "text" && logFormat != "json" {
		return fmt.Errorf("unsupported log format %q (expected text or json)", logFormat)
	}

	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// newPrx builds a compiler from the configuration file, the environment and
// the global flags, in increasing order of precedence.
func newPrx(cmd *cobra.Command) (*prettyregex.Prx, error) {
	cfg, err := prettyregex.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if noValidate {
		cfg.ValidatePatterns = false
	}
	if lenient {
		cfg.ThrowOnError = false
	}

	opts := append(cfg.Options(), prettyregex.WithLogger(newLogger(cmd.ErrOrStderr())))

	return prettyregex.New(opts...), nil
}

// compileFlags returns --flags as compile arguments. When the flag is not
// given the command default applies, so an explicit empty value differs
// from none.
func compileFlags(cmd *cobra.Command) []string {
	if !cmd.Flags().Changed("flags") {
		return nil
	}

	return []string{flagLetter}
}

// output writes v as JSON with --format json, and calls text otherwise.
func output(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if format == "json" {
		return json.Encode(w, v, true)
	}

	text(w)
	return nil
}
