// Package render is the formatting interpreter. It walks a compiled item
// sequence and writes the textual representation of a date-time value to an
// io.Writer.
//
// The value being formatted is abstracted behind the Provider interface so
// that partial values (a date with no time, a time with no offset) can be
// rendered. A component whose capability the provider lacks fails with
// UnsupportedError; optional groups swallow that failure and emit nothing.
package render
