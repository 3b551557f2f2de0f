package prettyregex

import (
	"errors"
	"strings"
	"testing"

	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/json"
)

func TestDebug(t *testing.T) {
	d := Debug("[charU&charL&0-9]{8,}")

	const want = `(?=.*[A-Z])(?=.*[a-z])(?=.*[0-9])[A-Za-z0-9]{8,}`
	if d.Parsed != want {
		t.Fatalf("Parsed = %q, want %q", d.Parsed, want)
	}
	if d.Compiled != "/"+want+"/" {
		t.Fatalf("Compiled = %q", d.Compiled)
	}
	if d.Engine != "regexp2" || !d.Valid || d.ParseError != nil {
		t.Fatalf("Debug = %+v", d)
	}
}

func TestDebugInsensitive(t *testing.T) {
	d := Debug("string(yes, ci)")
	if d.Flags != "i" || d.Compiled != `/\byes\b/i` {
		t.Fatalf("Debug = %+v", d)
	}
}

func TestDebugInvalid(t *testing.T) {
	d := Debug("[9-0]")
	if d.Valid {
		t.Fatal("Valid = true")
	}
	if len(d.Errors) == 0 {
		t.Fatal("no validation errors")
	}
	if d.ParseError == nil || !errors.Is(d.ParseError, prxerrors.ErrRange) {
		t.Fatalf("ParseError = %v, want range error", d.ParseError)
	}
	if d.Parsed != "" || d.Compiled != "" {
		t.Fatalf("Debug = %+v, want no output", d)
	}
}

func TestDebugJSON(t *testing.T) {
	out, err := Debug("(digit").JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(out), `"isValid": false`) {
		t.Fatalf("JSON = %s", out)
	}

	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	pe, ok := back["parseError"].(map[string]any)
	if !ok {
		t.Fatalf("parseError = %#v", back["parseError"])
	}
	if pe["kind"] != "PARSE_ERROR" {
		t.Fatalf("parseError.kind = %v", pe["kind"])
	}
}

func TestFeatures(t *testing.T) {
	f := Features()

	if f.Version != Version || f.MaxRepeat != 1000 {
		t.Fatalf("Features = %+v", f)
	}

	names := map[string]string{}
	for _, c := range f.NamedClasses {
		names[c.Name] = c.Regex
	}
	if names["digit"] != "[0-9]" || names["wordchar"] != `\w` {
		t.Fatalf("NamedClasses = %v", f.NamedClasses)
	}

	if len(f.Flags) != 6 {
		t.Fatalf("Flags = %v", f.Flags)
	}
	for i := 1; i < len(f.Advanced); i++ {
		if f.Advanced[i-1] >= f.Advanced[i] {
			t.Fatalf("Advanced is not sorted at %q", f.Advanced[i])
		}
	}
}
