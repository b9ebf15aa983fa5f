// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime contains proleptic Gregorian date, clock time and
// date-time types.
//
// When handling calendar values, the standard library time package has some
// shortcomings:
//
//   - A time.Time is always a specific point in time in a specific timezone.
//     There is no type for a date or a time of day on their own.
//   - A time.Duration can only represent ~292 years, so differences between
//     distant dates can not be expressed.
//   - Validating user supplied fields is up to the caller, as time.Date
//     silently normalizes October 32 to November 1.
//
// This package provides immutable Date, Time and DateTime values which are
// only ever constructed from validated fields or from a linear count of days
// or seconds. Years range from MinYear to MaxYear, about nine quadrillion
// years either way, so dates far outside the range of time.Time, or before
// the introduction of the Gregorian calendar, are fine. Constructors reject
// years outside that range with an error.
//
// Time zones are not modelled beyond fixed offsets from UTC (see Offset).
// Leap seconds are ignored throughout: every day has 86400 seconds.
package datetime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gonih.org/datetime/internal/rangecheck"
)

// A Date is a day of the proleptic Gregorian calendar.
//
// Besides the year, month and day a Date carries its day of the year and
// its day of the week, which are computed once on construction. Dates are
// comparable with ==, which agrees with Equal.
//
// The zero Date is not a valid date. Use IsZero to detect it.
type Date struct {
	ymd     YearMonthDay
	yearday int16
	weekday Weekday
}

// YMD returns the date with the given year, month and day.
//
// An *OutOfRangeError is returned if year is outside [MinYear, MaxYear], if
// month is not one of the defined months, or if day is not a day of that
// month.
func YMD(year Year, month Month, day int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if !month.valid() {
		return Date{}, &OutOfRangeError{Field: "month", Value: int64(month), Min: int64(January), Max: int64(December) + 1}
	}
	if _, err := rangecheck.Check("day", day, 1, month.DaysIn(year.IsLeap())+1); err != nil {
		return Date{}, err
	}
	return dateFromUnixDays(daysSinceEpoch(YearMonthDay{Year: year, Month: month, Day: int8(day)})), nil
}

// YD returns the date on the given day of year. Days of the year count from
// 1, for January 1, to 365, or 366 in leap years.
func YD(year Year, yearday int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if _, err := rangecheck.Check("yearday", yearday, 1, year.Days()+1); err != nil {
		return Date{}, err
	}
	jan1 := daysSinceEpoch(YearMonthDay{Year: year, Month: January, Day: 1})
	return dateFromUnixDays(jan1 + int64(yearday) - 1), nil
}

// YWD returns the date of the given ISO 8601 week date.
//
// Week 1 of a year is the week containing its January 4, weeks start on a
// Monday. The result may fall into the year before or after year: the Monday
// of week 1 of 2009 is 2008-12-29.
//
// week must lie within [1, year.WeeksIn()].
func YWD(year Year, week int, weekday Weekday) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if !weekday.valid() {
		return Date{}, &OutOfRangeError{Field: "weekday", Value: int64(weekday), Min: int64(Monday), Max: int64(Sunday) + 1}
	}
	if _, err := rangecheck.Check("week", week, 1, year.WeeksIn()+1); err != nil {
		return Date{}, err
	}

	jan4 := dateFromUnixDays(daysSinceEpoch(YearMonthDay{Year: year, Month: January, Day: 4}))
	correction := jan4.weekday.DaysFromMondayAsOne() + 3

	yearday := 7*week + weekday.DaysFromMondayAsOne() - correction
	if yearday <= 0 {
		prev := year.Previous()
		return YD(prev, prev.Days()+yearday)
	}
	if n := year.Days(); yearday > n {
		return YD(year.Next(), yearday-n)
	}
	return YD(year, yearday)
}

// DateFromUnixDays returns the date n days after 1970-01-01. An
// *OutOfRangeError is returned if the date is outside [MinYear, MaxYear].
func DateFromUnixDays(n int64) (Date, error) {
	if _, err := rangecheck.Check("days", n, minUnixDays, maxUnixDays+1); err != nil {
		return Date{}, err
	}
	return dateFromUnixDays(n), nil
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	d, err := YMD(Year(year), Month(month), day)
	if err != nil {
		panic(fmt.Errorf("time.Time with invalid date: %w", err))
	}
	return d
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

// Year returns the year of d.
func (d Date) Year() Year {
	return d.ymd.Year
}

// Month returns the month of d.
func (d Date) Month() Month {
	return d.ymd.Month
}

// Day returns the day of the month of d, starting at 1.
func (d Date) Day() int {
	return int(d.ymd.Day)
}

// YearDay returns the day of the year of d, in the range [1,365] for
// non-leap years, and [1,366] in leap years.
func (d Date) YearDay() int {
	return int(d.yearday)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return d.weekday
}

// Date returns the year, month and day of d.
func (d Date) Date() (year Year, month Month, day int) {
	return d.ymd.Year, d.ymd.Month, int(d.ymd.Day)
}

// YearMonthDay returns the calendar fields of d.
func (d Date) YearMonthDay() YearMonthDay {
	return d.ymd
}

// YearMonth returns the month containing d.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.ymd.Year, Month: d.ymd.Month}
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs. Week
// ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to week 52 or
// 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (d Date) ISOWeek() (year Year, week int) {
	// The Thursday of a week decides which year it belongs to.
	year = d.ymd.Year
	thu := int(d.yearday) + Thursday.DaysFromMondayAsOne() - d.weekday.DaysFromMondayAsOne()
	if thu < 1 {
		year--
		thu += year.Days()
	} else if n := year.Days(); thu > n {
		year++
		thu -= n
	}
	return year, (thu-1)/7 + 1
}

// DaysSinceEpoch returns the number of days from 1970-01-01 to d. It is
// negative for earlier dates.
func (d Date) DaysSinceEpoch() int64 {
	return daysSinceEpoch(d.ymd)
}

// AddDays returns the date n days after d. n may be negative.
//
// AddDays panics if the result is outside [MinYear, MaxYear].
func (d Date) AddDays(n int64) Date {
	days := d.DaysSinceEpoch()
	if n < minUnixDays-days || n > maxUnixDays-days {
		panic(fmt.Sprintf("datetime: %v.AddDays(%d) is out of range", d, n))
	}
	return dateFromUnixDays(days + n)
}

// Sub returns the number of days from e to d.
func (d Date) Sub(e Date) int64 {
	return d.DaysSinceEpoch() - e.DaysSinceEpoch()
}

// Compare returns -1 if d is before e, +1 if it is after e and 0 if they are
// the same day.
func (d Date) Compare(e Date) int {
	return d.ymd.Compare(e.ymd)
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return d.ymd == e.ymd
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return d.Compare(e) < 0
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return d.Compare(e) > 0
}

// IsZero reports whether d is the zero Date, which is not a valid date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// At combines d with a time of day.
func (d Date) At(t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Std returns d at the given clock time in loc.
func (d Date) Std(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(int(d.ymd.Year), d.ymd.Month.Std(), int(d.ymd.Day), hour, min, sec, nsec, loc)
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	return fmt.Sprintf("datetime.YMD(%d, datetime.%v, %d)", d.ymd.Year, d.ymd.Month, d.ymd.Day)
}

// String returns the date formatted as ISO 8601.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	return d.Format(ISODate)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] representing the number of days since
// 1970-01-01.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, d.DaysSinceEpoch())], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0:
		return errors.New("encoded date overflows int64")
	case i != len(b):
		return errors.New("extra data after date")
	}
	nd, err := DateFromUnixDays(v)
	if err == nil {
		*d = nd
	}
	return err
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(nil, ISODate), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(ISODate, string(b))
	if err == nil {
		*d = v
	}
	return err
}
