package cast

import "time"

// Setting is a constraint that matches the types a configuration value can
// be decoded into.
type Setting interface {
	int | bool | time.Duration
}
