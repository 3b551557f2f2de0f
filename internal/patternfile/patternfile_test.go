package patternfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const batch = `# identifiers
charU char+

digit{3}-digit{4}
   # indented comment
  startdigit+end  
string(cat)|string(dog)
`

var want = []Entry{
	{Line: 2, Pattern: "charU char+"},
	{Line: 4, Pattern: "digit{3}-digit{4}"},
	{Line: 6, Pattern: "startdigit+end"},
	{Line: 7, Pattern: "string(cat)|string(dog)"},
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(batch))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse (-want +got):\n%s", diff)
	}
}

func TestParseCRLF(t *testing.T) {
	got, err := Parse(strings.NewReader("digit\r\n\r\nchar\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([]Entry{{1, "digit"}, {3, "char"}}, got); diff != "" {
		t.Fatalf("Parse (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.prx")
	if err := os.WriteFile(path, []byte(batch), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	if got := f.Len(); got != len(batch) {
		t.Fatalf("Len = %d, want %d", got, len(batch))
	}
	if f.Name() != path {
		t.Fatalf("Name = %q, want %q", f.Name(), path)
	}

	got, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Entries (-want +got):\n%s", diff)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.prx")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read = %v, want no entries", got)
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.prx")); !os.IsNotExist(err) {
		t.Fatalf("Read missing file: err = %v, want not-exist", err)
	}
}
