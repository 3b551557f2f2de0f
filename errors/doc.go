// Package errors defines the closed error taxonomy shared by the PRX
// validator, translator and facade.
//
// Every issue is an [*Error] tagged with a [Kind]. The package-level
// sentinels ([ErrParse], [ErrRange], ...) let callers classify an error with
// the standard library:
//
//	if errors.Is(err, prxerrors.ErrRange) {
//		// descending range somewhere in the pattern
//	}
package errors
