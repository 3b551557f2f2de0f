package prettyregex

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/part-avocado/prettyregex/cast"
	prxerrors "github.com/part-avocado/prettyregex/errors"
	"github.com/part-avocado/prettyregex/internal/validator"
)

// Config is the serializable form of a [Prx] configuration.
type Config struct {
	ValidatePatterns bool          `yaml:"validate_patterns" json:"validatePatterns"`
	ThrowOnError     bool          `yaml:"throw_on_error" json:"throwOnError"`
	LogWarnings      bool          `yaml:"log_warnings" json:"logWarnings"`
	MaxPatternLength int           `yaml:"max_pattern_length" json:"maxPatternLength"`
	MatchTimeout     time.Duration `yaml:"match_timeout" json:"matchTimeout"`
	CacheSize        int           `yaml:"cache_size" json:"cacheSize"`
}

// Environment variables read by [LoadConfig]. They take precedence over the
// file.
const (
	EnvValidatePatterns = "PRX_VALIDATE_PATTERNS"
	EnvThrowOnError     = "PRX_THROW_ON_ERROR"
	EnvLogWarnings      = "PRX_LOG_WARNINGS"
	EnvMaxPatternLength = "PRX_MAX_PATTERN_LENGTH"
	EnvMatchTimeout     = "PRX_MATCH_TIMEOUT"
	EnvCacheSize        = "PRX_CACHE_SIZE"
)

// DefaultConfig returns the configuration [New] uses when given no options.
func DefaultConfig() Config {
	return Config{
		ValidatePatterns: true,
		ThrowOnError:     true,
		LogWarnings:      true,
		MaxPatternLength: validator.DefaultMaxPatternLength,
		CacheSize:        DefaultCacheSize,
	}
}

// Options converts c into options for [New].
func (c Config) Options() []Option {
	return []Option{
		WithValidatePatterns(c.ValidatePatterns),
		WithThrowOnError(c.ThrowOnError),
		WithLogWarnings(c.LogWarnings),
		WithMaxPatternLength(c.MaxPatternLength),
		WithMatchTimeout(c.MatchTimeout),
		WithCacheSize(c.CacheSize),
	}
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error

	if c.MaxPatternLength <= 0 {
		errs = append(errs, prxerrors.Newf(prxerrors.KindValidation,
			"max_pattern_length must be positive, got %d", c.MaxPatternLength))
	}
	if c.MatchTimeout < 0 {
		errs = append(errs, prxerrors.Newf(prxerrors.KindValidation,
			"match_timeout must not be negative, got %s", c.MatchTimeout))
	}
	if c.CacheSize < 0 {
		errs = append(errs, prxerrors.Newf(prxerrors.KindValidation,
			"cache_size must not be negative, got %d", c.CacheSize))
	}

	return errors.Join(errs...)
}

// LoadConfig reads a YAML configuration file. Settings missing from the
// file keep their defaults, and the PRX_* environment variables override
// both. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	return errors.Join(
		override(&cfg.ValidatePatterns, cast.Env[bool], EnvValidatePatterns),
		override(&cfg.ThrowOnError, cast.Env[bool], EnvThrowOnError),
		override(&cfg.LogWarnings, cast.Env[bool], EnvLogWarnings),
		override(&cfg.MaxPatternLength, cast.Env[int], EnvMaxPatternLength),
		override(&cfg.MatchTimeout, cast.Env[time.Duration], EnvMatchTimeout),
		override(&cfg.CacheSize, cast.Env[int], EnvCacheSize),
	)
}

// ConfigFromMap builds a configuration from loosely typed values, as found
// in decoded JSON or command-line maps. Keys match the YAML names, ignoring
// case, '-' and '_'. Missing keys keep their defaults.
func ConfigFromMap(m map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	err := errors.Join(
		override(&cfg.ValidatePatterns, fromMap[bool](m), "validate_patterns"),
		override(&cfg.ThrowOnError, fromMap[bool](m), "throw_on_error"),
		override(&cfg.LogWarnings, fromMap[bool](m), "log_warnings"),
		override(&cfg.MaxPatternLength, fromMap[int](m), "max_pattern_length"),
		override(&cfg.MatchTimeout, fromMap[time.Duration](m), "match_timeout"),
		override(&cfg.CacheSize, fromMap[int](m), "cache_size"),
	)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func fromMap[T cast.Setting](m map[string]any) func(string) (T, bool, error) {
	return func(key string) (T, bool, error) {
		return cast.Lookup[T](m, key)
	}
}

// override sets *dst from source(key) when the source has a value.
func override[T cast.Setting](dst *T, source func(string) (T, bool, error), key string) error {
	v, ok, err := source(key)
	if err != nil {
		return err
	}
	if ok {
		*dst = v
	}

	return nil
}
