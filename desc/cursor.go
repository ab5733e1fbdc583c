package desc

// ---------------------------------------------------------------------------
// Cursor: byte-level position tracker
// ---------------------------------------------------------------------------

// Cursor tracks a position within a byte sequence. It is a plain value:
// taking a snapshot is a copy and restoring one is an assignment. The grammar
// compiler runs a cursor over the description source while the parse
// interpreter runs its own over input text; the two are never shared.
type Cursor struct {
	rest []byte
	off  int
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input []byte) Cursor {
	return Cursor{rest: input}
}

// Offset returns the absolute byte offset from the start of the input.
func (c *Cursor) Offset() int { return c.off }

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.rest) }

// Empty reports whether all input has been consumed.
func (c *Cursor) Empty() bool { return len(c.rest) == 0 }

// Rest returns the unconsumed bytes. The slice aliases the original input
// and must not be mutated.
func (c *Cursor) Rest() []byte { return c.rest }

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	return c.rest[0], true
}

// PeekAt returns the byte n positions ahead without consuming anything.
func (c *Cursor) PeekAt(n int) (byte, bool) {
	if n >= len(c.rest) {
		return 0, false
	}
	return c.rest[n], true
}

// Advance consumes and returns the next byte.
func (c *Cursor) Advance() (byte, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	b := c.rest[0]
	c.rest = c.rest[1:]
	c.off++
	return b, true
}

// Skip consumes n bytes. It reports whether n bytes were available.
func (c *Cursor) Skip(n int) bool {
	if n > len(c.rest) {
		return false
	}
	c.rest = c.rest[n:]
	c.off += n
	return true
}

// TakeWhile consumes the maximal run of bytes satisfying pred and returns it.
// The returned slice aliases the input.
func (c *Cursor) TakeWhile(pred func(byte) bool) []byte {
	n := 0
	for n < len(c.rest) && pred(c.rest[n]) {
		n++
	}
	run := c.rest[:n]
	c.rest = c.rest[n:]
	c.off += n
	return run
}

// StripPrefix consumes prefix if the unconsumed input starts with it,
// comparing bytes exactly.
func (c *Cursor) StripPrefix(prefix []byte) bool {
	if len(prefix) > len(c.rest) {
		return false
	}
	for i, b := range prefix {
		if c.rest[i] != b {
			return false
		}
	}
	c.rest = c.rest[len(prefix):]
	c.off += len(prefix)
	return true
}

// StripPrefixFold is StripPrefix with ASCII case-insensitive comparison.
func (c *Cursor) StripPrefixFold(prefix []byte) bool {
	if len(prefix) > len(c.rest) {
		return false
	}
	for i, b := range prefix {
		if lowerASCII(c.rest[i]) != lowerASCII(b) {
			return false
		}
	}
	c.rest = c.rest[len(prefix):]
	c.off += len(prefix)
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
