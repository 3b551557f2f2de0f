package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies an [Error].
type Kind uint8

const (
	// KindParse is a structural token-boundary failure such as an unclosed
	// "[", "string(", "char(" or "{".
	KindParse Kind = iota + 1
	// KindValidation is a failed pre-flight check, or input that is not a
	// usable pattern at all.
	KindValidation
	// KindRange is a descending character or numeric range.
	KindRange
	// KindQuantifier is a malformed "{...}" quantifier.
	KindQuantifier
	// KindCharacterClass is malformed content inside "[...]".
	KindCharacterClass
)

// ErrParse matches every [Error] of kind [KindParse] under [errors.Is].
var ErrParse = errors.New("parse error")

// ErrValidation matches every [Error] of kind [KindValidation] under
// [errors.Is].
var ErrValidation = errors.New("validation error")

// ErrRange matches every [Error] of kind [KindRange] under [errors.Is].
var ErrRange = errors.New("range error")

// ErrQuantifier matches every [Error] of kind [KindQuantifier] under
// [errors.Is].
var ErrQuantifier = errors.New("quantifier error")

// ErrCharacterClass matches every [Error] of kind [KindCharacterClass]
// under [errors.Is].
var ErrCharacterClass = errors.New("character class error")

func (k Kind) sentinel() error {
	switch k {
	case KindParse:
		return ErrParse
	case KindValidation:
		return ErrValidation
	case KindRange:
		return ErrRange
	case KindQuantifier:
		return ErrQuantifier
	case KindCharacterClass:
		return ErrCharacterClass
	default:
		return nil
	}
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Code returns the stable machine-readable code of k, e.g. "RANGE_ERROR".
func (k Kind) Code() string {
	switch k {
	case KindParse:
		return "PARSE_ERROR"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindRange:
		return "RANGE_ERROR"
	case KindQuantifier:
		return "QUANTIFIER_ERROR"
	case KindCharacterClass:
		return "CHARACTER_CLASS_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// MarshalText encodes k as its [Kind.Code].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Code()), nil
}

// UnmarshalText decodes a [Kind.Code].
func (k *Kind) UnmarshalText(b []byte) error {
	for c := KindParse; c <= KindCharacterClass; c++ {
		if c.Code() == string(b) {
			*k = c
			return nil
		}
	}

	return fmt.Errorf("unknown error kind %q", b)
}

// Error is a single issue raised while validating or translating a PRX
// pattern. The same type is used for hard errors and for advisory warnings
// collected by the validator.
//
// Pos and End delimit the offending span as byte offsets into the PRX
// source; both are -1 when no position applies.
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	Pos        int    `json:"pos"`
	End        int    `json:"end"`
	Text       string `json:"text,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`

	Err error `json:"-"`
}

// New returns an issue of kind k without position information.
func New(k Kind, msg string) *Error {
	return &Error{Kind: k, Message: msg, Pos: -1, End: -1}
}

// Newf is like [New] but formats the message.
func Newf(k Kind, format string, args ...any) *Error {
	return New(k, fmt.Sprintf(format, args...))
}

// At returns an issue of kind k for the span [pos, end) holding text.
func At(k Kind, pos, end int, text, msg string) *Error {
	return &Error{Kind: k, Message: msg, Pos: pos, End: end, Text: text}
}

// WithSuggestion sets the remediation hint and returns e.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap records cause as the underlying error and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}

	return e.Kind.String() + ": " + e.Message
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [*Error] in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
