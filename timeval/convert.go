package timeval

import (
	"errors"
	"fmt"
	"time"

	"github.com/chazu/tempo/parsing"
)

// ErrInsufficient reports an accumulator whose fields do not determine an
// instant, such as a bare [month] or a 12-hour clock with no period.
var ErrInsufficient = errors.New("parsed fields are insufficient to build a date-time")

// RangeError reports a field value no calendar date-time can carry, such as
// ordinal 366 in a common year.
type RangeError struct {
	Field string
	Value int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("the %s value %d is out of range", e.Field, e.Value)
}

// ConflictError reports a redundant field that contradicts the fields the
// date was built from, such as a weekday that does not fall on the parsed
// calendar date.
type ConflictError struct {
	Field string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("the %s value contradicts the other parsed fields", e.Field)
}

// ToTime builds a concrete time.Time from an accumulator. A unix timestamp
// short-circuits everything else; otherwise the date is resolved from the
// calendar, ordinal, or ISO week fields, in that order. Missing time-of-day
// fields default to zero. Without offset fields the result is in UTC.
func ToTime(p *parsing.Parsed) (time.Time, error) {
	loc, err := location(p)
	if err != nil {
		return time.Time{}, err
	}

	if ts, ok := p.UnixTimestampNanos(); ok {
		return time.Unix(0, ts).In(loc), nil
	}

	hour, min, sec, nanos, err := timeOfDay(p)
	if err != nil {
		return time.Time{}, err
	}

	t, err := date(p, loc)
	if err != nil {
		return time.Time{}, err
	}
	t = t.Add(time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(nanos)*time.Nanosecond)

	if wd, ok := p.Weekday(); ok {
		if got := (int(t.Weekday())+6)%7 + 1; got != wd {
			return time.Time{}, ConflictError{Field: "weekday"}
		}
	}
	return t, nil
}

func location(p *parsing.Parsed) (*time.Location, error) {
	hour, ok := p.OffsetHour()
	if !ok {
		// Minute or second magnitudes without an hour have no sign to
		// hang off, so the offset is not determined.
		if _, ok := p.OffsetMinute(); ok {
			return nil, ErrInsufficient
		}
		if _, ok := p.OffsetSecond(); ok {
			return nil, ErrInsufficient
		}
		return time.UTC, nil
	}
	min, _ := p.OffsetMinute()
	sec, _ := p.OffsetSecond()
	if min > 59 {
		return nil, RangeError{Field: "offset_minute", Value: min}
	}
	if sec > 59 {
		return nil, RangeError{Field: "offset_second", Value: sec}
	}
	// Minute and second magnitudes carry the hour's sign.
	off := hour*3600 + min*60 + sec
	if hour < 0 {
		off = hour*3600 - min*60 - sec
	}
	if off == 0 {
		return time.UTC, nil
	}
	return time.FixedZone("", off), nil
}

func timeOfDay(p *parsing.Parsed) (hour, min, sec, nanos int, err error) {
	if h, ok := p.Hour24(); ok {
		hour = h
	} else if h, ok := p.Hour12(); ok {
		pm, ok := p.Hour12IsPM()
		if !ok {
			return 0, 0, 0, 0, ErrInsufficient
		}
		hour = h % 12
		if pm {
			hour += 12
		}
	}
	min, _ = p.Minute()
	sec, _ = p.Second()
	nanos, _ = p.Subsecond()
	return hour, min, sec, nanos, nil
}

// date resolves the calendar date at midnight in loc.
func date(p *parsing.Parsed, loc *time.Location) (time.Time, error) {
	if ord, ok := p.Ordinal(); ok {
		year, err := resolveYear(p.Year, p.YearCentury, p.YearLastTwo)
		if err != nil {
			return time.Time{}, err
		}
		if ord < 1 || ord > daysInYear(year) {
			return time.Time{}, RangeError{Field: "ordinal", Value: ord}
		}
		return time.Date(year, 1, 1, 0, 0, 0, 0, loc).AddDate(0, 0, ord-1), nil
	}

	if month, ok := p.Month(); ok {
		year, err := resolveYear(p.Year, p.YearCentury, p.YearLastTwo)
		if err != nil {
			return time.Time{}, err
		}
		day, ok := p.Day()
		if !ok {
			return time.Time{}, ErrInsufficient
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		// time.Date normalizes out-of-range days; a round-trip mismatch
		// means the combination named no real date.
		if t.Day() != day || int(t.Month()) != month || t.Year() != year {
			return time.Time{}, RangeError{Field: "day", Value: day}
		}
		return t, nil
	}

	if week, ok := p.ISOWeek(); ok {
		isoYear, err := resolveYear(p.ISOYear, p.ISOYearCentury, p.ISOYearLastTwo)
		if err != nil {
			return time.Time{}, err
		}
		wd, ok := p.Weekday()
		if !ok {
			return time.Time{}, ErrInsufficient
		}
		return isoWeekDate(isoYear, week, wd, loc)
	}

	return time.Time{}, ErrInsufficient
}

// resolveYear combines the full, century, and last-two slots. A lone
// last-two or century value does not pin down a year.
func resolveYear(full, century, lastTwo func() (int, bool)) (int, error) {
	if y, ok := full(); ok {
		return y, nil
	}
	c, haveCentury := century()
	lt, haveLastTwo := lastTwo()
	if !haveCentury || !haveLastTwo {
		return 0, ErrInsufficient
	}
	if c < 0 {
		return c*100 - lt, nil
	}
	return c*100 + lt, nil
}

func isoWeekDate(isoYear, week, weekday int, loc *time.Location) (time.Time, error) {
	if weekday < 1 || weekday > 7 {
		return time.Time{}, RangeError{Field: "weekday", Value: weekday}
	}
	// January 4 always falls in ISO week 1.
	jan4 := time.Date(isoYear, 1, 4, 0, 0, 0, 0, loc)
	week1Monday := jan4.AddDate(0, 0, -((int(jan4.Weekday())+6)%7))
	t := week1Monday.AddDate(0, 0, (week-1)*7+(weekday-1))
	if y, w := t.ISOWeek(); y != isoYear || w != week {
		return time.Time{}, RangeError{Field: "iso_week", Value: week}
	}
	return t, nil
}

func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
