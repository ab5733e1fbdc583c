package parsing

import (
	"math"

	"github.com/chazu/tempo/desc"
)

// Per-component matchers. Each returns errNoMatch when the input does not
// fit the component, leaving the cursor untouched; a non-nil error other
// than errNoMatch is a field conflict and aborts the parse.

var monthValues = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

func longMonthNames() []string { return desc.MonthNames[:] }

var shortMonthNames = func() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = desc.ShortMonthName(i + 1)
	}
	return names
}()

var (
	weekdayValues = []int{1, 2, 3, 4, 5, 6, 7}

	shortWeekdayNames = func() []string {
		names := make([]string, 7)
		for i := range names {
			names[i] = desc.ShortWeekdayName(i + 1)
		}
		return names
	}()
)

func matchComponent(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	start := cur.Offset()
	err := matchComponentValue(p, cur, c)
	if err == errNoMatch {
		return InvalidComponentError{Kind: c.Kind, Offset: start}
	}
	return err
}

func matchComponentValue(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	switch c.Kind {
	case desc.KindYear:
		return matchYear(p, cur, c)
	case desc.KindMonth:
		return matchMonth(p, cur, c)
	case desc.KindDay:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 1, 31)
		if !ok {
			return errNoMatch
		}
		return p.SetDay(int(v))
	case desc.KindOrdinal:
		v, ok := rangedDigits(cur, c.Padding(), 3, 3, 1, 366)
		if !ok {
			return errNoMatch
		}
		return p.SetOrdinal(int(v))
	case desc.KindWeekNumber:
		v, ok := paddedDigits(cur, c.Padding(), 2, 2)
		if !ok {
			return errNoMatch
		}
		switch c.Repr() {
		case "sunday":
			return p.SetSundayWeek(int(v))
		case "monday":
			return p.SetMondayWeek(int(v))
		default:
			return p.SetISOWeek(int(v))
		}
	case desc.KindWeekday:
		return matchWeekday(p, cur, c)
	case desc.KindHour:
		if c.Repr() == "12" {
			v, ok := rangedDigits(cur, c.Padding(), 2, 2, 1, 12)
			if !ok {
				return errNoMatch
			}
			return p.SetHour12(int(v))
		}
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 0, 23)
		if !ok {
			return errNoMatch
		}
		return p.SetHour24(int(v))
	case desc.KindMinute:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 0, 59)
		if !ok {
			return errNoMatch
		}
		return p.SetMinute(int(v))
	case desc.KindSecond:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 0, 59)
		if !ok {
			return errNoMatch
		}
		return p.SetSecond(int(v))
	case desc.KindSubsecond:
		return matchSubsecond(p, cur, c)
	case desc.KindPeriod:
		names := []string{"AM", "PM"}
		if c.Mod("case") == "lower" {
			names = []string{"am", "pm"}
		}
		v, ok := matchName(cur, c.CaseSensitive(), names, []int{0, 1})
		if !ok {
			return errNoMatch
		}
		return p.SetHour12IsPM(v == 1)
	case desc.KindOffsetHour:
		snapshot := *cur
		sign, hasSign := takeSign(cur)
		v, ok := paddedDigits(cur, c.Padding(), 2, 2)
		if !ok || (!hasSign && c.SignMandatory()) {
			*cur = snapshot
			return errNoMatch
		}
		if sign == '-' {
			v = -v
		}
		return p.SetOffsetHour(int(v))
	case desc.KindOffsetMinute:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 0, 59)
		if !ok {
			return errNoMatch
		}
		return p.SetOffsetMinute(int(v))
	case desc.KindOffsetSecond:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 0, 59)
		if !ok {
			return errNoMatch
		}
		return p.SetOffsetSecond(int(v))
	case desc.KindUnixTimestamp:
		return matchUnixTimestamp(p, cur, c)
	case desc.KindIgnore:
		if !cur.Skip(c.Count()) {
			return errNoMatch
		}
		return nil
	case desc.KindEnd:
		if c.Mod("trailing_input") == "discard" {
			cur.Skip(cur.Len())
			return nil
		}
		if !cur.Empty() {
			return TrailingInputError{Offset: cur.Offset()}
		}
		return nil
	default:
		return errNoMatch
	}
}

func matchYear(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	iso := c.Mod("base") == "iso_week"
	switch c.Repr() {
	case "last_two":
		v, ok := paddedDigits(cur, c.Padding(), 2, 2)
		if !ok {
			return errNoMatch
		}
		if iso {
			return p.SetISOYearLastTwo(int(v))
		}
		return p.SetYearLastTwo(int(v))
	case "century":
		snapshot := *cur
		sign, hasSign := takeSign(cur)
		v, ok := paddedDigits(cur, c.Padding(), 2, 2)
		if !ok || (!hasSign && c.SignMandatory()) {
			*cur = snapshot
			return errNoMatch
		}
		if sign == '-' {
			v = -v
		}
		if iso {
			return p.SetISOYearCentury(int(v))
		}
		return p.SetYearCentury(int(v))
	default:
		snapshot := *cur
		sign, hasSign := takeSign(cur)
		// Six digits leave room for the extended year range; an unsigned
		// year of five or more digits is rejected so the sign stays
		// unambiguous.
		v, ok := paddedDigits(cur, c.Padding(), 4, 6)
		if !ok || (!hasSign && (c.SignMandatory() || v >= 10_000)) {
			*cur = snapshot
			return errNoMatch
		}
		if c.Mod("range") == "standard" && v > 9999 {
			*cur = snapshot
			return errNoMatch
		}
		if sign == '-' {
			v = -v
		}
		if iso {
			return p.SetISOYear(int(v))
		}
		return p.SetYear(int(v))
	}
}

func matchMonth(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	switch c.Repr() {
	case "long":
		v, ok := matchName(cur, c.CaseSensitive(), longMonthNames(), monthValues)
		if !ok {
			return errNoMatch
		}
		return p.SetMonth(v)
	case "short":
		v, ok := matchName(cur, c.CaseSensitive(), shortMonthNames, monthValues)
		if !ok {
			return errNoMatch
		}
		return p.SetMonth(v)
	default:
		v, ok := rangedDigits(cur, c.Padding(), 2, 2, 1, 12)
		if !ok {
			return errNoMatch
		}
		return p.SetMonth(int(v))
	}
}

func matchWeekday(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	oneIndexed := c.Mod("one_indexed") != "false"
	var (
		names  []string
		values []int
	)
	switch c.Repr() {
	case "short":
		names, values = shortWeekdayNames, weekdayValues
	case "long":
		names, values = desc.WeekdayNames[:], weekdayValues
	case "sunday":
		// Digits name days counted from Sunday; values map back to the
		// Monday-based weekday.
		if oneIndexed {
			names, values = []string{"1", "2", "3", "4", "5", "6", "7"}, []int{7, 1, 2, 3, 4, 5, 6}
		} else {
			names, values = []string{"0", "1", "2", "3", "4", "5", "6"}, []int{7, 1, 2, 3, 4, 5, 6}
		}
	default: // monday
		if oneIndexed {
			names, values = []string{"1", "2", "3", "4", "5", "6", "7"}, weekdayValues
		} else {
			names, values = []string{"0", "1", "2", "3", "4", "5", "6"}, weekdayValues
		}
	}
	v, ok := matchName(cur, c.CaseSensitive(), names, values)
	if !ok {
		return errNoMatch
	}
	return p.SetWeekday(v)
}

func matchSubsecond(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	min, max := 1, 9
	if d := c.Digits(); d != "1+" {
		min = int(d[0] - '0')
		max = min
	}
	snapshot := *cur
	var value int64
	count := 0
	for count < max {
		b, ok := cur.Peek()
		if !ok || !isDigit(b) {
			break
		}
		cur.Advance()
		value = value*10 + int64(b-'0')
		count++
	}
	if count < min {
		*cur = snapshot
		return errNoMatch
	}
	for i := count; i < 9; i++ {
		value *= 10
	}
	return p.SetSubsecond(int(value))
}

func matchUnixTimestamp(p *Parsed, cur *desc.Cursor, c desc.Component) error {
	var digits int
	var scale int64
	switch c.Mod("precision") {
	case "millisecond":
		digits, scale = 13, 1e6
	case "microsecond":
		digits, scale = 16, 1e3
	case "nanosecond":
		digits, scale = 19, 1
	default:
		digits, scale = 10, 1e9
	}
	snapshot := *cur
	sign, hasSign := takeSign(cur)
	v, ok := nToMDigits(cur, 1, digits)
	if !ok || (!hasSign && c.SignMandatory()) {
		*cur = snapshot
		return errNoMatch
	}
	// The digit ceilings admit values whose nanosecond scaling would wrap
	// int64; reject those rather than produce a wrong instant.
	if v > math.MaxInt64/scale {
		*cur = snapshot
		return errNoMatch
	}
	v *= scale
	if sign == '-' {
		v = -v
	}
	return p.SetUnixTimestampNanos(v)
}
