package render

import (
	"io"
	"strconv"

	"github.com/chazu/tempo/desc"
)

// writeNumber writes value with the given padding discipline and field
// width. A negative value always carries '-'; forceSign adds '+' to
// non-negative values. The sign precedes the padding, matching the parse
// side where the sign is consumed before the digits.
func writeNumber(w io.Writer, value int64, pad desc.Padding, width int, forceSign bool) (int, error) {
	buf := make([]byte, 0, width+1)
	if value < 0 {
		buf = append(buf, '-')
		value = -value
	} else if forceSign {
		buf = append(buf, '+')
	}
	digits := strconv.AppendInt(nil, value, 10)
	if fill := width - len(digits); fill > 0 && pad != desc.PadNone {
		padByte := byte('0')
		if pad == desc.PadSpace {
			padByte = ' '
		}
		for i := 0; i < fill; i++ {
			buf = append(buf, padByte)
		}
	}
	buf = append(buf, digits...)
	return w.Write(buf)
}
