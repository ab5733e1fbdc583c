package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chazu/tempo/desc"
)

// Provider supplies the fields of the value being formatted. The three Has
// methods gate whole capability groups: a component drawn from a missing
// group fails with UnsupportedError instead of reading garbage.
//
// Conventions: Month, Day and Ordinal are 1-based. Weekday is 1 for Monday
// through 7 for Sunday. ISOYear and ISOWeek follow ISO 8601 week numbering.
// OffsetSeconds is seconds east of UTC.
type Provider interface {
	HasDate() bool
	HasTime() bool
	HasOffset() bool

	Year() int
	ISOYear() int
	Month() int
	Day() int
	Ordinal() int
	Weekday() int
	ISOWeek() int

	Hour() int
	Minute() int
	Second() int
	Nanosecond() int

	OffsetSeconds() int

	// UnixNano is consulted only when all three capability groups are
	// present.
	UnixNano() int64
}

// UnsupportedError reports a component the provider cannot supply, such as
// an offset_hour when formatting a local date-time.
type UnsupportedError struct {
	Kind desc.Kind
}

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("value does not carry the information to format a %s component", e.Kind)
}

// Render writes the formatted representation of v to w and returns the
// number of bytes written. Output already written is not rolled back when an
// error occurs partway through, except inside optional groups, which are
// all-or-nothing.
func Render(items []desc.Item, v Provider, w io.Writer) (int, error) {
	return renderItems(w, items, v)
}

// String formats v into a string. It is a convenience wrapper around Render.
func String(items []desc.Item, v Provider) (string, error) {
	var buf bytes.Buffer
	if _, err := Render(items, v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderItems(w io.Writer, items []desc.Item, v Provider) (int, error) {
	total := 0
	for _, it := range items {
		n, err := renderItem(w, it, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func renderItem(w io.Writer, it desc.Item, v Provider) (int, error) {
	switch it := it.(type) {
	case desc.Literal:
		return w.Write(it.Text)
	case desc.Component:
		return renderComponent(w, it, v)
	case desc.Optional:
		// Render into a scratch buffer so a failing component discards
		// the whole group instead of leaving a partial write.
		var buf bytes.Buffer
		if _, err := renderItems(&buf, it.Items, v); err != nil {
			var unsupported UnsupportedError
			if errors.As(err, &unsupported) {
				return 0, nil
			}
			return 0, err
		}
		return w.Write(buf.Bytes())
	case desc.First:
		if len(it.Alternatives) == 0 {
			return 0, nil
		}
		var lastErr error
		for _, alt := range it.Alternatives {
			var buf bytes.Buffer
			if _, err := renderItems(&buf, alt, v); err != nil {
				lastErr = err
				continue
			}
			return w.Write(buf.Bytes())
		}
		return 0, lastErr
	default:
		return 0, fmt.Errorf("unknown format item %T", it)
	}
}

func renderComponent(w io.Writer, c desc.Component, v Provider) (int, error) {
	switch c.Kind {
	case desc.KindYear, desc.KindMonth, desc.KindDay, desc.KindOrdinal,
		desc.KindWeekNumber, desc.KindWeekday:
		if !v.HasDate() {
			return 0, UnsupportedError{c.Kind}
		}
	case desc.KindHour, desc.KindMinute, desc.KindSecond, desc.KindSubsecond,
		desc.KindPeriod:
		if !v.HasTime() {
			return 0, UnsupportedError{c.Kind}
		}
	case desc.KindOffsetHour, desc.KindOffsetMinute, desc.KindOffsetSecond:
		if !v.HasOffset() {
			return 0, UnsupportedError{c.Kind}
		}
	case desc.KindUnixTimestamp:
		if !v.HasDate() || !v.HasTime() || !v.HasOffset() {
			return 0, UnsupportedError{c.Kind}
		}
	}

	switch c.Kind {
	case desc.KindYear:
		return renderYear(w, c, v)
	case desc.KindMonth:
		switch c.Repr() {
		case "long":
			return io.WriteString(w, desc.MonthNames[v.Month()-1])
		case "short":
			return io.WriteString(w, desc.ShortMonthName(v.Month()))
		default:
			return writeNumber(w, int64(v.Month()), c.Padding(), 2, false)
		}
	case desc.KindDay:
		return writeNumber(w, int64(v.Day()), c.Padding(), 2, false)
	case desc.KindOrdinal:
		return writeNumber(w, int64(v.Ordinal()), c.Padding(), 3, false)
	case desc.KindWeekNumber:
		return writeNumber(w, int64(weekNumber(c.Repr(), v)), c.Padding(), 2, false)
	case desc.KindWeekday:
		return renderWeekday(w, c, v)
	case desc.KindHour:
		h := v.Hour()
		if c.Repr() == "12" {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		return writeNumber(w, int64(h), c.Padding(), 2, false)
	case desc.KindMinute:
		return writeNumber(w, int64(v.Minute()), c.Padding(), 2, false)
	case desc.KindSecond:
		return writeNumber(w, int64(v.Second()), c.Padding(), 2, false)
	case desc.KindSubsecond:
		return renderSubsecond(w, c, v)
	case desc.KindPeriod:
		period := "AM"
		if v.Hour() >= 12 {
			period = "PM"
		}
		if c.Mod("case") == "lower" {
			period = string([]byte{period[0] | 0x20, period[1] | 0x20})
		}
		return io.WriteString(w, period)
	case desc.KindOffsetHour:
		// The sign belongs to the hour field even when the hour itself is
		// zero, as in -00:30.
		off := v.OffsetSeconds()
		total := 0
		if off < 0 {
			n, err := io.WriteString(w, "-")
			total += n
			if err != nil {
				return total, err
			}
		} else if c.SignMandatory() {
			n, err := io.WriteString(w, "+")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err := writeNumber(w, int64(abs(off/3600)), c.Padding(), 2, false)
		return total + n, err
	case desc.KindOffsetMinute:
		return writeNumber(w, int64(abs(v.OffsetSeconds()/60%60)), c.Padding(), 2, false)
	case desc.KindOffsetSecond:
		return writeNumber(w, int64(abs(v.OffsetSeconds()%60)), c.Padding(), 2, false)
	case desc.KindUnixTimestamp:
		ts := v.UnixNano()
		switch c.Mod("precision") {
		case "millisecond":
			ts /= 1e6
		case "microsecond":
			ts /= 1e3
		case "nanosecond":
		default:
			ts /= 1e9
		}
		return writeNumber(w, ts, desc.PadNone, 1, c.SignMandatory())
	case desc.KindIgnore, desc.KindEnd:
		// Parse-only components produce no output.
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown component kind %d", c.Kind)
	}
}

func renderYear(w io.Writer, c desc.Component, v Provider) (int, error) {
	full := v.Year()
	if c.Mod("base") == "iso_week" {
		full = v.ISOYear()
	}
	var value int64
	width := 2
	switch c.Repr() {
	case "century":
		value = int64(full / 100)
	case "last_two":
		value = int64(abs(full % 100))
	default:
		value = int64(full)
		width = 4
	}
	// Years needing more than four digits always carry an explicit sign so
	// the field boundary stays recoverable.
	forceSign := c.SignMandatory() || (c.Repr() == "full" && abs(full) >= 10_000)
	return writeNumber(w, value, c.Padding(), width, forceSign)
}

func renderWeekday(w io.Writer, c desc.Component, v Provider) (int, error) {
	wd := v.Weekday() // 1 = Monday .. 7 = Sunday
	switch c.Repr() {
	case "short":
		return io.WriteString(w, desc.ShortWeekdayName(wd))
	case "sunday":
		n := wd % 7 // days since Sunday
		if c.Mod("one_indexed") != "false" {
			n++
		}
		return writeNumber(w, int64(n), desc.PadNone, 1, false)
	case "monday":
		n := wd - 1 // days since Monday
		if c.Mod("one_indexed") != "false" {
			n++
		}
		return writeNumber(w, int64(n), desc.PadNone, 1, false)
	default:
		return io.WriteString(w, desc.WeekdayNames[wd-1])
	}
}

func renderSubsecond(w io.Writer, c desc.Component, v Provider) (int, error) {
	nanos := v.Nanosecond()
	if c.Digits() == "1+" {
		// All meaningful digits: trim trailing zeros, keep at least one.
		digits := 9
		for digits > 1 && nanos%10 == 0 {
			nanos /= 10
			digits--
		}
		return writeNumber(w, int64(nanos), desc.PadZero, digits, false)
	}
	digits := int(c.Digits()[0] - '0')
	for i := 9; i > digits; i-- {
		nanos /= 10
	}
	return writeNumber(w, int64(nanos), desc.PadZero, digits, false)
}

// weekNumber computes the week of the year under the requested numbering.
// The Sunday- and Monday-based schemes count week 1 from the first such
// weekday of the year, with earlier days falling in week 0.
func weekNumber(repr string, v Provider) int {
	switch repr {
	case "sunday":
		return (v.Ordinal() - v.Weekday()%7 + 6) / 7
	case "monday":
		return (v.Ordinal() - (v.Weekday() - 1) + 6) / 7
	default:
		return v.ISOWeek()
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
