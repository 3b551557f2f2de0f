package prettyregex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/part-avocado/prettyregex/internal/validator"
)

// DefaultCacheSize is the number of translated patterns a [Prx] remembers.
const DefaultCacheSize = 1024

type options struct {
	validatePatterns bool
	throwOnError     bool
	logWarnings      bool
	logger           *slog.Logger
	maxPatternLength int
	matchTimeout     time.Duration
	cacheSize        int
	registerer       prometheus.Registerer
}

func defaultOptions() options {
	return options{
		validatePatterns: true,
		throwOnError:     true,
		logWarnings:      true,
		maxPatternLength: validator.DefaultMaxPatternLength,
		cacheSize:        DefaultCacheSize,
	}
}

// Option configures a [Prx].
type Option func(*options)

// WithValidatePatterns turns the pre-flight validator on or off for
// [Prx.Compile]. It is on by default.
func WithValidatePatterns(on bool) Option {
	return func(o *options) {
		o.validatePatterns = on
	}
}

// WithThrowOnError controls whether validation errors stop [Prx.Compile].
// When off, they are logged and the pattern is still translated; translation
// failures are always returned. It is on by default.
func WithThrowOnError(on bool) Option {
	return func(o *options) {
		o.throwOnError = on
	}
}

// WithLogWarnings controls whether validation warnings are logged. It is on
// by default.
func WithLogWarnings(on bool) Option {
	return func(o *options) {
		o.logWarnings = on
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxPatternLength sets the length above which the validator warns.
// Values <= 0 keep the default.
func WithMaxPatternLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPatternLength = n
		}
	}
}

// WithMatchTimeout bounds a single match on the backtracking engine. Zero
// means no limit.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.matchTimeout = d
		}
	}
}

// WithCacheSize sets how many translated patterns are kept. Zero disables
// the cache; negative values keep the default.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// WithMetrics registers the compiler's Prometheus instruments with reg.
// Registering two instances on one registry panics.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
