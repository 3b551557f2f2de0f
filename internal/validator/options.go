package validator

// DefaultMaxPatternLength is the length, in characters, above which a pattern
// draws a warning.
const DefaultMaxPatternLength = 10_000

// DefaultMaxNestingDepth is the group depth above which a pattern draws a
// warning.
const DefaultMaxNestingDepth = 50

// LongClassThreshold is the content length, in characters, at which a
// character class draws a warning.
const LongClassThreshold = 100

type options struct {
	maxPatternLength int
	maxNestingDepth  int
}

func defaultOptions() options {
	return options{
		maxPatternLength: DefaultMaxPatternLength,
		maxNestingDepth:  DefaultMaxNestingDepth,
	}
}

// Option configures a [Validator].
type Option func(*options)

// WithMaxPatternLength sets the warning threshold for pattern length.
// Values <= 0 keep the default.
func WithMaxPatternLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPatternLength = n
		}
	}
}

// WithMaxNestingDepth sets the warning threshold for group nesting.
// Values <= 0 keep the default.
func WithMaxNestingDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxNestingDepth = n
		}
	}
}
