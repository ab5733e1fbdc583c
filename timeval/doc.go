// Package timeval bridges the interpreters and the standard library's
// time.Time. It supplies the render side's value provider and the parse
// side's conversion from an accumulator into a concrete instant, including
// the range and sufficiency checks the core deliberately leaves out.
package timeval
