// Package metrics holds the Prometheus instruments of a compiler instance.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "prettyregex"

// Metrics tracks compiler activity.
//
// Metrics:
//   - prettyregex_compilations_total: compiled patterns by engine
//   - prettyregex_compile_errors_total: failed compilations by error kind
//   - prettyregex_cache_lookups_total: matcher cache lookups by result
//   - prettyregex_validation_issues_total: validator findings by severity and kind
//   - prettyregex_parse_duration_seconds: time spent translating PRX
type Metrics struct {
	compilations  *prometheus.CounterVec
	compileErrors *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	issues        *prometheus.CounterVec
	parseDuration prometheus.Histogram
}

// New creates the instruments and registers them with reg. A nil reg
// returns nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		compilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "compilations_total",
				Help:      "Total number of compiled patterns",
			},
			[]string{"engine"},
		),

		compileErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "compile_errors_total",
				Help:      "Total number of failed compilations",
			},
			[]string{"kind"},
		),

		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_lookups_total",
				Help:      "Total number of compiled-matcher cache lookups",
			},
			[]string{"result"},
		),

		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validation_issues_total",
				Help:      "Total number of validation errors and warnings",
			},
			[]string{"severity", "kind"},
		),

		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "parse_duration_seconds",
				Help:      "Time spent translating PRX into regex text",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
	}

	reg.MustRegister(
		m.compilations,
		m.compileErrors,
		m.cacheLookups,
		m.issues,
		m.parseDuration,
	)

	return m
}

// RecordCompile counts one successful compilation on engine.
func (m *Metrics) RecordCompile(engine string) {
	if m == nil {
		return
	}
	m.compilations.WithLabelValues(engine).Inc()
}

// RecordCompileError counts one failed compilation.
func (m *Metrics) RecordCompileError(kind string) {
	if m == nil {
		return
	}
	m.compileErrors.WithLabelValues(kind).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// RecordIssues adds n findings of the given severity ("error" or
// "warning") and kind.
func (m *Metrics) RecordIssues(severity, kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.issues.WithLabelValues(severity, kind).Add(float64(n))
}

// ObserveParse records the duration of one translation.
func (m *Metrics) ObserveParse(d time.Duration) {
	if m == nil {
		return
	}
	m.parseDuration.Observe(d.Seconds())
}
