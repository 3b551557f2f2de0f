// Package patternfile reads batch files of PRX patterns.
//
// A batch file holds one pattern per line. Blank lines and lines whose first
// non-blank character is '#' are skipped. Files are memory-mapped when the
// platform allows it and read through [os.File] otherwise.
package patternfile

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"go.dw1.io/mmapfile"
)

// Entry is one pattern and the 1-based line it came from.
type Entry struct {
	Line    int    `json:"line"`
	Pattern string `json:"pattern"`
}

// File is an open batch file, backed by either a memory mapping or a plain
// os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps name into memory, falling back to os.Open if mapping fails
// (empty files cannot be mapped, for one).
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Mapped reports whether the file is memory-mapped.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0
	}

	return int(info.Size())
}

// Name returns the file name passed to Open.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Entries returns the patterns in the file.
func (f *File) Entries() ([]Entry, error) {
	if f.mm != nil {
		return Parse(bytes.NewReader(f.mm.Bytes()))
	}

	if _, err := f.os.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return Parse(f.os)
}

// Close releases the mapping or file handle.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Read opens name and returns its patterns.
func Read(name string) ([]Entry, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Entries()
}

// Parse reads patterns from r. Trailing carriage returns and surrounding
// blanks are trimmed; everything else on the line is the pattern.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, Entry{Line: line, Pattern: text})
	}

	return entries, sc.Err()
}
