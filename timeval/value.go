package timeval

import "time"

// Value adapts a time.Time to the render provider interface. The zero Value
// has no capabilities and renders nothing but literals.
type Value struct {
	t                  time.Time
	date, time_, offst bool
}

// Wrap exposes every capability of t: date, time of day, and offset.
func Wrap(t time.Time) Value {
	return Value{t: t, date: true, time_: true, offst: true}
}

// DateOnly exposes only the calendar date of t.
func DateOnly(t time.Time) Value {
	return Value{t: t, date: true}
}

// TimeOnly exposes only the time of day of t.
func TimeOnly(t time.Time) Value {
	return Value{t: t, time_: true}
}

// Local exposes the date and time of t but not its offset, the shape of a
// wall-clock reading with no zone attached.
func Local(t time.Time) Value {
	return Value{t: t, date: true, time_: true}
}

func (v Value) HasDate() bool   { return v.date }
func (v Value) HasTime() bool   { return v.time_ }
func (v Value) HasOffset() bool { return v.offst }

func (v Value) Year() int { return v.t.Year() }

func (v Value) ISOYear() int {
	y, _ := v.t.ISOWeek()
	return y
}

func (v Value) Month() int   { return int(v.t.Month()) }
func (v Value) Day() int     { return v.t.Day() }
func (v Value) Ordinal() int { return v.t.YearDay() }

// Weekday returns 1 for Monday through 7 for Sunday.
func (v Value) Weekday() int { return (int(v.t.Weekday())+6)%7 + 1 }

func (v Value) ISOWeek() int {
	_, w := v.t.ISOWeek()
	return w
}

func (v Value) Hour() int       { return v.t.Hour() }
func (v Value) Minute() int     { return v.t.Minute() }
func (v Value) Second() int     { return v.t.Second() }
func (v Value) Nanosecond() int { return v.t.Nanosecond() }

func (v Value) OffsetSeconds() int {
	_, off := v.t.Zone()
	return off
}

func (v Value) UnixNano() int64 { return v.t.UnixNano() }

// Time returns the wrapped value.
func (v Value) Time() time.Time { return v.t }
