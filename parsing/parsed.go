package parsing

import "fmt"

// InconsistentError reports two components assigning different values to the
// same field, such as "[hour] [hour]" over "10 11".
type InconsistentError struct {
	Field string
}

func (e InconsistentError) Error() string {
	return fmt.Sprintf("the %q field was set to two different values while parsing", e.Field)
}

// opt is a value slot that may be unset. Setting an already-set slot to the
// same value is a no-op; setting it to a different value is a conflict.
type opt[T comparable] struct {
	value T
	ok    bool
}

func (o *opt[T]) get() (T, bool) { return o.value, o.ok }

func (o *opt[T]) set(field string, v T) error {
	if o.ok && o.value != v {
		return InconsistentError{Field: field}
	}
	o.value, o.ok = v, true
	return nil
}

// Parsed accumulates field values while the interpreter walks the input. It
// is a plain value: snapshotting it for backtracking is a struct copy.
//
// Offset minute and second magnitudes carry the sign of the offset hour;
// they are stored as parsed, unsigned.
type Parsed struct {
	year           opt[int]
	yearLastTwo    opt[int]
	yearCentury    opt[int]
	isoYear        opt[int]
	isoYearLastTwo opt[int]
	isoYearCentury opt[int]

	month   opt[int]
	day     opt[int]
	ordinal opt[int]
	weekday opt[int]

	isoWeek    opt[int]
	sundayWeek opt[int]
	mondayWeek opt[int]

	hour24     opt[int]
	hour12     opt[int]
	hour12IsPM opt[bool]
	minute     opt[int]
	second     opt[int]
	subsecond  opt[int]

	offsetHour   opt[int]
	offsetMinute opt[int]
	offsetSecond opt[int]

	timestampNanos opt[int64]
}

func (p *Parsed) Year() (int, bool)           { return p.year.get() }
func (p *Parsed) YearLastTwo() (int, bool)    { return p.yearLastTwo.get() }
func (p *Parsed) YearCentury() (int, bool)    { return p.yearCentury.get() }
func (p *Parsed) ISOYear() (int, bool)        { return p.isoYear.get() }
func (p *Parsed) ISOYearLastTwo() (int, bool) { return p.isoYearLastTwo.get() }
func (p *Parsed) ISOYearCentury() (int, bool) { return p.isoYearCentury.get() }
func (p *Parsed) Month() (int, bool)          { return p.month.get() }
func (p *Parsed) Day() (int, bool)            { return p.day.get() }
func (p *Parsed) Ordinal() (int, bool)        { return p.ordinal.get() }

// Weekday returns the parsed weekday, 1 for Monday through 7 for Sunday.
func (p *Parsed) Weekday() (int, bool) { return p.weekday.get() }

func (p *Parsed) ISOWeek() (int, bool)    { return p.isoWeek.get() }
func (p *Parsed) SundayWeek() (int, bool) { return p.sundayWeek.get() }
func (p *Parsed) MondayWeek() (int, bool) { return p.mondayWeek.get() }

func (p *Parsed) Hour24() (int, bool)      { return p.hour24.get() }
func (p *Parsed) Hour12() (int, bool)      { return p.hour12.get() }
func (p *Parsed) Hour12IsPM() (bool, bool) { return p.hour12IsPM.get() }
func (p *Parsed) Minute() (int, bool)      { return p.minute.get() }
func (p *Parsed) Second() (int, bool)      { return p.second.get() }

// Subsecond returns the parsed subsecond scaled to nanoseconds.
func (p *Parsed) Subsecond() (int, bool) { return p.subsecond.get() }

func (p *Parsed) OffsetHour() (int, bool)   { return p.offsetHour.get() }
func (p *Parsed) OffsetMinute() (int, bool) { return p.offsetMinute.get() }
func (p *Parsed) OffsetSecond() (int, bool) { return p.offsetSecond.get() }

// UnixTimestampNanos returns the parsed unix timestamp in nanoseconds.
func (p *Parsed) UnixTimestampNanos() (int64, bool) { return p.timestampNanos.get() }

func (p *Parsed) SetYear(v int) error           { return p.year.set("year", v) }
func (p *Parsed) SetYearLastTwo(v int) error    { return p.yearLastTwo.set("year_last_two", v) }
func (p *Parsed) SetYearCentury(v int) error    { return p.yearCentury.set("year_century", v) }
func (p *Parsed) SetISOYear(v int) error        { return p.isoYear.set("iso_year", v) }
func (p *Parsed) SetISOYearLastTwo(v int) error { return p.isoYearLastTwo.set("iso_year_last_two", v) }
func (p *Parsed) SetISOYearCentury(v int) error { return p.isoYearCentury.set("iso_year_century", v) }
func (p *Parsed) SetMonth(v int) error          { return p.month.set("month", v) }
func (p *Parsed) SetDay(v int) error            { return p.day.set("day", v) }
func (p *Parsed) SetOrdinal(v int) error        { return p.ordinal.set("ordinal", v) }
func (p *Parsed) SetWeekday(v int) error        { return p.weekday.set("weekday", v) }
func (p *Parsed) SetISOWeek(v int) error        { return p.isoWeek.set("iso_week", v) }
func (p *Parsed) SetSundayWeek(v int) error     { return p.sundayWeek.set("sunday_week", v) }
func (p *Parsed) SetMondayWeek(v int) error     { return p.mondayWeek.set("monday_week", v) }
func (p *Parsed) SetHour24(v int) error         { return p.hour24.set("hour_24", v) }
func (p *Parsed) SetHour12(v int) error         { return p.hour12.set("hour_12", v) }
func (p *Parsed) SetHour12IsPM(v bool) error    { return p.hour12IsPM.set("hour_12_is_pm", v) }
func (p *Parsed) SetMinute(v int) error         { return p.minute.set("minute", v) }
func (p *Parsed) SetSecond(v int) error         { return p.second.set("second", v) }
func (p *Parsed) SetSubsecond(v int) error      { return p.subsecond.set("subsecond", v) }
func (p *Parsed) SetOffsetHour(v int) error     { return p.offsetHour.set("offset_hour", v) }
func (p *Parsed) SetOffsetMinute(v int) error   { return p.offsetMinute.set("offset_minute", v) }
func (p *Parsed) SetOffsetSecond(v int) error   { return p.offsetSecond.set("offset_second", v) }

func (p *Parsed) SetUnixTimestampNanos(v int64) error {
	return p.timestampNanos.set("unix_timestamp", v)
}
