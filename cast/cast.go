package cast

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// To converts v to type T.
func To[T Setting](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int:
		return toInt[T](v)
	case bool:
		return retype[T, bool](cast.ToBoolE(v))
	case time.Duration:
		return retype[T, time.Duration](cast.ToDurationE(v))
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T", zero, v)
	}
}

// Lookup finds key in m and converts its value to T. Keys match regardless
// of case, '-' and '_', so "cache-size", "cache_size" and "cacheSize" are
// the same key; m holding more than one spelling is an error. The boolean
// reports whether the key was present.
func Lookup[T Setting](m map[string]any, key string) (T, bool, error) {
	var zero T

	want := normalizeKey(key)
	var found []string
	for k := range m {
		if normalizeKey(k) == want {
			found = append(found, k)
		}
	}

	switch len(found) {
	case 0:
		return zero, false, nil
	case 1:
	default:
		slices.Sort(found)
		return zero, true, fmt.Errorf("keys %q all name the setting %s", found, key)
	}

	to, err := To[T](m[found[0]])
	if err != nil {
		return to, true, fmt.Errorf("%s: %w", found[0], err)
	}

	return to, true, nil
}

// Env reads the environment variable name and converts it to T. The
// boolean reports whether the variable was set to a non-empty value.
func Env[T Setting](name string) (T, bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(raw) == "" {
		var zero T
		return zero, false, nil
	}

	to, err := To[T](strings.TrimSpace(raw))
	if err != nil {
		return to, true, fmt.Errorf("%s: %w", name, err)
	}

	return to, true, nil
}

// toInt converts v to int. Integer inputs go through safemath so that
// out-of-range values fail instead of wrapping; anything else goes through
// spf13/cast.
func toInt[T any](v any) (T, error) {
	if isIntVal(v) {
		return retype[T, int](safemath.ConvertAny[int](v))
	}

	return retype[T, int](cast.ToIntE(v))
}

// retype re-types a concrete result as T, the caller's type parameter.
func retype[T any, B any](v B, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}

	return any(v).(T), nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

func normalizeKey(k string) string {
	k = strings.ToLower(k)
	return strings.NewReplacer("-", "", "_", "").Replace(k)
}
