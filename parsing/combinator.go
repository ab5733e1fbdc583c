package parsing

import (
	"math"

	"github.com/chazu/tempo/desc"
)

// Low-level matchers over a cursor. Each either consumes what it matched or
// leaves the cursor exactly where it was.

// takeSign consumes a leading '+' or '-'.
func takeSign(cur *desc.Cursor) (byte, bool) {
	switch b, ok := cur.Peek(); {
	case ok && (b == '+' || b == '-'):
		cur.Advance()
		return b, true
	default:
		return 0, false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// nToMDigits consumes between n and m decimal digits, maximally, and returns
// their value. On failure the cursor is unchanged.
func nToMDigits(cur *desc.Cursor, n, m int) (int64, bool) {
	snapshot := *cur
	var value int64
	count := 0
	for count < m {
		b, ok := cur.Peek()
		if !ok || !isDigit(b) {
			break
		}
		d := int64(b - '0')
		if value > (math.MaxInt64-d)/10 {
			*cur = snapshot
			return 0, false
		}
		cur.Advance()
		value = value*10 + d
		count++
	}
	if count < n {
		*cur = snapshot
		return 0, false
	}
	return value, true
}

// paddedDigits consumes a numeric field of n to m digits under the given
// padding discipline: zero padding demands the full minimum width, no
// padding accepts any count from 1, and space padding accepts up to n-1
// spaces with the minimum digit count reduced accordingly.
func paddedDigits(cur *desc.Cursor, pad desc.Padding, n, m int) (int64, bool) {
	switch pad {
	case desc.PadNone:
		return nToMDigits(cur, 1, m)
	case desc.PadSpace:
		snapshot := *cur
		spaces := 0
		for spaces < n-1 {
			if b, ok := cur.Peek(); !ok || b != ' ' {
				break
			}
			cur.Advance()
			spaces++
		}
		v, ok := nToMDigits(cur, n-spaces, m-spaces)
		if !ok {
			*cur = snapshot
			return 0, false
		}
		return v, true
	default:
		return nToMDigits(cur, n, m)
	}
}

// rangedDigits is paddedDigits with a value bound; a field that parses but
// falls outside [lo, hi] is rejected with the cursor restored, so the bytes
// stay available to an alternative.
func rangedDigits(cur *desc.Cursor, pad desc.Padding, n, m int, lo, hi int64) (int64, bool) {
	snapshot := *cur
	v, ok := paddedDigits(cur, pad, n, m)
	if !ok || v < lo || v > hi {
		*cur = snapshot
		return 0, false
	}
	return v, true
}

// matchName consumes the first matching name from the table and returns its
// associated value. Matching is longest-pattern-first as listed; callers
// order their tables so full names precede prefixes.
func matchName(cur *desc.Cursor, caseSensitive bool, names []string, values []int) (int, bool) {
	for i, name := range names {
		if caseSensitive {
			if cur.StripPrefix([]byte(name)) {
				return values[i], true
			}
		} else if cur.StripPrefixFold([]byte(name)) {
			return values[i], true
		}
	}
	return 0, false
}
