package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/part-avocado/prettyregex"
	"github.com/part-avocado/prettyregex/json"
)

// run executes the root command with args and fresh global flags.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "parse", "startdigit+end")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out != "^[0-9]+$\n" {
		t.Fatalf("parse output = %q", out)
	}

	out, _, err = run(t, "parse", "--format", "json", "char(.)com")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got parseOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if diff := cmp.Diff(parseOutput{Pattern: "char(.)com", Regex: `\.com`}, got); diff != "" {
		t.Fatalf("parse json (-want +got):\n%s", diff)
	}

	if _, _, err := run(t, "parse", "[charU+charL"); err == nil {
		t.Fatal("parse of an unclosed class succeeded")
	}
}

func TestTestCommand(t *testing.T) {
	out, _, err := run(t, "test", "startdigit+end", "12345")
	if err != nil || out != "true\n" {
		t.Fatalf("test = %q, %v", out, err)
	}

	out, _, err = run(t, "test", "startdigit+end", "12a")
	if !errors.Is(err, errReported) || out != "false\n" {
		t.Fatalf("test = %q, %v; want false and errReported", out, err)
	}

	out, _, err = run(t, "test", "--flags", "i", "charL+", "ABC")
	if err != nil || out != "true\n" {
		t.Fatalf("test -f i = %q, %v", out, err)
	}
}

func TestMatchCommand(t *testing.T) {
	out, _, err := run(t, "match", "digit+", "a12b3")
	if err != nil || out != "12\n3\n" {
		t.Fatalf("match = %q, %v", out, err)
	}

	out, _, err = run(t, "match", "--flags=", "(char)(digit)", "a1b2")
	if err != nil || out != "a1\na\n1\n" {
		t.Fatalf("match --flags= = %q, %v", out, err)
	}

	out, _, err = run(t, "match", "--format", "json", "char", "a1b")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("match json (-want +got):\n%s", diff)
	}
}

func TestReplaceCommand(t *testing.T) {
	out, _, err := run(t, "replace", "(digit+)", "a12b3", "<$1>")
	if err != nil || out != "a<12>b<3>\n" {
		t.Fatalf("replace = %q, %v", out, err)
	}

	out, _, err = run(t, "replace", "-f", "", "0-9", "a1b2c", "X")
	if err != nil || out != "aXb2c\n" {
		t.Fatalf("replace -f '' = %q, %v", out, err)
	}
}

func TestValidateCommand(t *testing.T) {
	out, _, err := run(t, "validate", "[9-0]")
	if !errors.Is(err, errReported) {
		t.Fatalf("validate err = %v, want errReported", err)
	}
	if !strings.HasPrefix(out, "invalid\n") || !strings.Contains(out, "error: RANGE_ERROR at 1:") {
		t.Fatalf("validate output = %q", out)
	}

	out, _, err = run(t, "validate", "--format", "json", "start(digit+)*end")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	var r prettyregex.ValidationResult
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if !r.Valid || len(r.Warnings) == 0 {
		t.Fatalf("validate json = %+v", r)
	}
}

func TestLenientAndNoValidate(t *testing.T) {
	if _, _, err := run(t, "test", "digit}", "1}"); err == nil {
		t.Fatal("strict test of an unbalanced pattern succeeded")
	}

	out, stderr, err := run(t, "test", "--lenient", "digit}", "1}")
	if err != nil || out != "true\n" {
		t.Fatalf("test --lenient = %q, %v", out, err)
	}
	if !strings.Contains(stderr, "ignoring validation error") {
		t.Fatalf("stderr = %q, want the ignored error", stderr)
	}

	out, stderr, err = run(t, "test", "--no-validate", "digit}", "1}")
	if err != nil || out != "true\n" || stderr != "" {
		t.Fatalf("test --no-validate = %q, %q, %v", out, stderr, err)
	}
}

func TestConfigFlag(t *testing.T) {
	path := writeFile(t, "prx.yaml", "throw_on_error: false\nlog_warnings: false\n")

	out, stderr, err := run(t, "--config", path, "test", "digit}", "1}")
	if err != nil || out != "true\n" || stderr != "" {
		t.Fatalf("test with config = %q, %q, %v", out, stderr, err)
	}

	if _, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "parse", "digit"); err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestLogFormat(t *testing.T) {
	_, stderr, err := run(t, "--lenient", "--log-format", "json", "test", "digit}", "1}")
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if !strings.Contains(stderr, `"level":"WARN"`) {
		t.Fatalf("stderr = %q, want JSON log lines", stderr)
	}

	_, stderr, err = run(t, "-v", "parse", "digit")
	if err != nil || stderr != "" {
		t.Fatalf("parse -v = %q, %v", stderr, err)
	}
	_, stderr, err = run(t, "-v", "test", "digit", "1")
	if err != nil || !strings.Contains(stderr, "compiled pattern") {
		t.Fatalf("test -v stderr = %q, %v", stderr, err)
	}
}

func TestDebugCommand(t *testing.T) {
	out, _, err := run(t, "debug", "[charU&digit]{6,}")
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	for _, want := range []string{"engine:   regexp2", "valid:    true", "compiled: /(?=.*[A-Z])"} {
		if !strings.Contains(out, want) {
			t.Fatalf("debug output %q lacks %q", out, want)
		}
	}

	out, _, err = run(t, "debug", "--format", "json", "(digit")
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	var d prettyregex.DebugInfo
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if d.Valid || d.ParseError == nil {
		t.Fatalf("debug json = %+v", d)
	}
}

func TestAdvancedCommand(t *testing.T) {
	out, _, err := run(t, "advanced", `lookahead(\d)\w`)
	if err != nil || out != "(?=\\d)\\w\n" {
		t.Fatalf("advanced = %q, %v", out, err)
	}

	out, _, err = run(t, "advanced", `wordstart\w+`, "hello world")
	if err != nil {
		t.Fatalf("advanced: %v", err)
	}
	if !strings.Contains(out, "match: hello\nmatch: world\n") {
		t.Fatalf("advanced output = %q", out)
	}

	out, _, err = run(t, "advanced", "unicode(L)")
	if err != nil || !strings.Contains(out, "suggested flags: u") {
		t.Fatalf("advanced = %q, %v", out, err)
	}
}

func TestBatchCommand(t *testing.T) {
	path := writeFile(t, "patterns.prx", "# sample\ndigit+\n\n[9-0]\nchar(.)com\n")

	out, _, err := run(t, "batch", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("batch err = %v, want errReported", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("batch output = %q", out)
	}
	if lines[0] != "2\tok\t[0-9]+" || !strings.HasPrefix(lines[1], "4\terror\t") || lines[2] != "5\tok\t\\.com" {
		t.Fatalf("batch output = %q", lines)
	}

	path = writeFile(t, "ok.prx", "digit\ncharU\n")
	out, _, err = run(t, "batch", "--format", "json", path)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	var got []batchResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	want := []batchResult{
		{Line: 1, Pattern: "digit", Regex: "[0-9]", Engine: "coregex"},
		{Line: 2, Pattern: "charU", Regex: "[A-Z]", Engine: "coregex"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("batch json (-want +got):\n%s", diff)
	}

	if _, _, err := run(t, "batch", filepath.Join(t.TempDir(), "missing.prx")); err == nil {
		t.Fatal("batch of a missing file succeeded")
	}
}

func TestFeaturesAndVersion(t *testing.T) {
	out, _, err := run(t, "features")
	if err != nil || !strings.Contains(out, "Named classes:") || !strings.Contains(out, "wordchar") {
		t.Fatalf("features = %q, %v", out, err)
	}

	out, _, err = run(t, "version")
	if err != nil || !strings.HasPrefix(out, "prx "+prettyregex.Version+"\n") {
		t.Fatalf("version = %q, %v", out, err)
	}
}

func TestGlobalFlagErrors(t *testing.T) {
	if _, _, err := run(t, "--format", "xml", "parse", "digit"); err == nil {
		t.Fatal("unknown output format accepted")
	}
	if _, _, err := run(t, "--log-format", "xml", "parse", "digit"); err == nil {
		t.Fatal("unknown log format accepted")
	}
	if _, _, err := run(t, "test", "digit"); err == nil {
		t.Fatal("test with one argument succeeded")
	}
	if _, _, err := run(t, "test", "-f", "q", "digit", "1"); err == nil {
		t.Fatal("unknown regex flag accepted")
	}
}
