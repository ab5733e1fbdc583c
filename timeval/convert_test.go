package timeval

import (
	"errors"
	"testing"
	"time"

	"github.com/chazu/tempo/desc"
	"github.com/chazu/tempo/parsing"
	"github.com/chazu/tempo/render"
)

func parseTo(t *testing.T, source, input string) (time.Time, error) {
	t.Helper()
	items, err := desc.Compile(source, 2)
	if err != nil {
		t.Fatalf("Compile(%q): %v", source, err)
	}
	p, _, err := parsing.Parse(items, []byte(input))
	if err != nil {
		t.Fatalf("Parse(%q, %q): %v", source, input, err)
	}
	return ToTime(p)
}

func mustParseTo(t *testing.T, source, input string) time.Time {
	t.Helper()
	v, err := parseTo(t, source, input)
	if err != nil {
		t.Fatalf("ToTime(%q over %q): %v", source, input, err)
	}
	return v
}

func TestToTimeCalendarDate(t *testing.T) {
	got := mustParseTo(t, "[year]-[month]-[day] [hour]:[minute]:[second]", "2024-03-07 10:30:45")
	want := time.Date(2024, 3, 7, 10, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestToTimeOrdinalDate(t *testing.T) {
	got := mustParseTo(t, "[year]-[ordinal]", "2019-334")
	want := time.Date(2019, 11, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestToTimeISOWeekDate(t *testing.T) {
	// 2019-W48-6 is 2019-11-30.
	got := mustParseTo(t, "[year base:iso_week]-W[week_number]-[weekday repr:monday]", "2019-W48-6")
	want := time.Date(2019, 11, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestToTimeCenturyAndLastTwo(t *testing.T) {
	got := mustParseTo(t, "[year repr:century][year repr:last_two]-[month]-[day]", "2019-11-30")
	want := time.Date(2019, 11, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestToTimeHour12(t *testing.T) {
	tests := []struct {
		input string
		hour  int
	}{
		{"2024-03-07 12 AM", 0},
		{"2024-03-07 01 AM", 1},
		{"2024-03-07 12 PM", 12},
		{"2024-03-07 11 PM", 23},
	}
	for _, tt := range tests {
		got := mustParseTo(t, "[year]-[month]-[day] [hour repr:12] [period]", tt.input)
		if got.Hour() != tt.hour {
			t.Errorf("parse(%q).Hour() = %d, want %d", tt.input, got.Hour(), tt.hour)
		}
	}
}

func TestToTimeOffset(t *testing.T) {
	got := mustParseTo(t, "[year]-[month]-[day] [hour]:[minute] [offset_hour]:[offset_minute]",
		"2019-11-30 23:59 -05:30")
	_, off := got.Zone()
	if off != -(5*3600 + 30*60) {
		t.Errorf("offset = %d, want %d", off, -(5*3600+30*60))
	}
	if got.Hour() != 23 || got.Minute() != 59 {
		t.Errorf("wall clock = %02d:%02d, want 23:59", got.Hour(), got.Minute())
	}
}

func TestToTimeUnixTimestamp(t *testing.T) {
	got := mustParseTo(t, "[unix_timestamp precision:nanosecond]", "1575178798123450000")
	if got.UnixNano() != 1575178798123450000 {
		t.Errorf("UnixNano = %d, want 1575178798123450000", got.UnixNano())
	}
}

func TestToTimeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		input  string
		check  func(error) bool
	}{
		{"date missing", "[hour]:[minute]", "10:30",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"day missing", "[year]-[month]", "2024-03",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"last two alone", "[year repr:last_two]-[month]-[day]", "24-03-07",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"hour12 without period", "[year]-[month]-[day] [hour repr:12]", "2024-03-07 10",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"offset minute alone", "[year]-[month]-[day] [offset_minute]", "2024-03-07 30",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"offset second alone", "[year]-[month]-[day] [offset_second]", "2024-03-07 30",
			func(err error) bool { return errors.Is(err, ErrInsufficient) }},
		{"nonexistent day", "[year]-[month]-[day]", "2023-02-30",
			func(err error) bool { var r RangeError; return errors.As(err, &r) && r.Field == "day" }},
		{"ordinal too large", "[year]-[ordinal]", "2023-366",
			func(err error) bool { var r RangeError; return errors.As(err, &r) && r.Field == "ordinal" }},
		{"weekday conflict", "[year]-[month]-[day] [weekday]", "2019-11-30 Friday",
			func(err error) bool { var c ConflictError; return errors.As(err, &c) }},
		{"iso week out of range", "[year base:iso_week]-W[week_number]-[weekday repr:monday]", "2023-W53-1",
			func(err error) bool { var r RangeError; return errors.As(err, &r) }},
	}
	for _, tt := range tests {
		_, err := parseTo(t, tt.source, tt.input)
		if err == nil {
			t.Errorf("%s: conversion succeeded, want error", tt.name)
			continue
		}
		if !tt.check(err) {
			t.Errorf("%s: error = %v, wrong kind", tt.name, err)
		}
	}
}

func TestToTimeLeapYearOrdinal(t *testing.T) {
	got := mustParseTo(t, "[year]-[ordinal]", "2024-366")
	want := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	// Each description carries enough fields to pin down the values it is
	// paired with, so render then parse then convert must reproduce them.
	tests := []struct {
		source string
		values []time.Time
	}{
		{
			"[year]-[month]-[day]T[hour]:[minute]:[second].[subsecond digits:9][offset_hour sign:mandatory]:[offset_minute]",
			[]time.Time{
				time.Date(2019, 11, 30, 23, 59, 58, 123450000, time.FixedZone("", -19800)),
				time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
				time.Date(1999, 12, 31, 12, 0, 1, 999999999, time.FixedZone("", 3600)),
			},
		},
		{
			"[weekday], [day] [month repr:short] [year] [hour]:[minute]:[second] [offset_hour sign:mandatory][offset_minute]",
			[]time.Time{
				time.Date(2019, 11, 30, 23, 59, 58, 0, time.FixedZone("", -19800)),
				time.Date(2024, 2, 29, 6, 30, 0, 0, time.UTC),
			},
		},
		{
			"[year]-[ordinal]T[hour]:[minute]:[second]",
			[]time.Time{
				time.Date(2024, 12, 31, 23, 0, 5, 0, time.UTC),
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	for _, tt := range tests {
		items, err := desc.Compile(tt.source, 2)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.source, err)
		}
		for _, v := range tt.values {
			text, err := render.String(items, Wrap(v))
			if err != nil {
				t.Fatalf("render %v with %q: %v", v, tt.source, err)
			}
			p, _, err := parsing.Parse(items, []byte(text))
			if err != nil {
				t.Fatalf("parse %q with %q: %v", text, tt.source, err)
			}
			got, err := ToTime(p)
			if err != nil {
				t.Fatalf("convert %q: %v", text, err)
			}
			if !got.Equal(v) {
				t.Errorf("round trip %q via %q: got %v, want %v", text, tt.source, got, v)
			}
		}
	}
}
