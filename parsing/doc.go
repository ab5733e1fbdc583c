// Package parsing is the matching interpreter. It walks a compiled item
// sequence over input text, consuming bytes and accumulating field values
// into a Parsed.
//
// The accumulator is deliberately dumb: each field is an optional slot that
// rejects being set to a conflicting value, and nothing more. Turning a
// Parsed into a concrete date-time value, with range checks and ambiguity
// resolution, is the timeval package's job.
package parsing
