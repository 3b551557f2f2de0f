// Package json encodes reports produced by the compiler, such as debug
// output and validation results.
//
// It is a thin layer over [sonic]. The default configuration keeps regex
// text readable: HTML characters are not escaped and map keys are sorted so
// output is stable.
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

// DefaultConfig is the configuration the package starts with.
var DefaultConfig = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}

var api = DefaultConfig.Froze()

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// MarshalIndent encodes a Go value as indented JSON using the current API config.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// NewDecoder creates a streaming decoder using the current API config.
func NewDecoder(r io.Reader) Decoder {
	return api.NewDecoder(r)
}

// NewEncoder creates a streaming encoder using the current API config.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// Encode writes v to w as one JSON document followed by a newline,
// indented by two spaces when pretty is set.
func Encode(w io.Writer, v any, pretty bool) error {
	enc := NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder

// Decoder is a JSON decoder.
type Decoder = sonic.Decoder

// SetConfig sets the configuration for the JSON package.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
