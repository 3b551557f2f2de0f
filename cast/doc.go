// Package cast decodes loosely typed configuration values, such as those
// read from YAML documents, environment variables or command-line maps.
//
// Integer settings go through [safemath], so a value that does not fit the
// target type is an error rather than a silently wrapped number. Booleans,
// durations, strings and lists go through [cast].
package cast
