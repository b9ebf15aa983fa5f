// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"iter"
	"strconv"

	"gonih.org/datetime/internal/rangecheck"
)

// A Year is a year of the proleptic Gregorian calendar, using astronomical
// numbering, so year 0 is 1 BC. Every int64 is a Year, but a Date only exists
// for years in [MinYear, MaxYear].
type Year int64

// MinYear and MaxYear bound the years of a Date. Within them every day count,
// and the difference of any two, fits into an int64.
const (
	MinYear Year = -1 << 53
	MaxYear Year = 1<<53 - 1
)

func (y Year) valid() bool {
	return MinYear <= y && y <= MaxYear
}

func checkYear(y Year) error {
	_, err := rangecheck.Check("year", y, MinYear, MaxYear+1)
	return err
}

// leapYearsBefore2001 is the number of leap years in [0, 2001).
const leapYearsBefore2001 = 486

// LeapYearCalculations returns whether y is a leap year, and a count of leap
// years relative to 2000. For y after 2000, elapsed is the number of leap
// years in (2000, y). Otherwise it is minus the number of leap years in
// [y, 2000]. Adding one gives the number of leap days between 2000-01-01 and
// January 1 of y.
func (y Year) LeapYearCalculations() (elapsed int64, leap bool) {
	// Both cases are the number of leap years in [0, y) minus those in
	// [0, 2001). Counting from y itself, rather than y-2000, never
	// overflows.
	c400, r := splitCycles(int64(y), 400)
	leap = r == 0 || (r%100 != 0 && r%4 == 0)
	elapsed = 97*c400 + leapYearsBefore(r) - leapYearsBefore2001
	return elapsed, leap
}

// leapYearsBefore returns the number of leap years in [0, r), for r in
// [0, 400].
func leapYearsBefore(r int64) int64 {
	return (r+3)/4 - (r+99)/100 + (r+399)/400
}

// IsLeap reports whether y is a leap year.
func (y Year) IsLeap() bool {
	_, leap := y.LeapYearCalculations()
	return leap
}

// Days returns the number of days in y, 365 or 366.
func (y Year) Days() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Next returns the year after y.
func (y Year) Next() Year {
	return y + 1
}

// Previous returns the year before y.
func (y Year) Previous() Year {
	return y - 1
}

// Month pairs y with m.
func (y Year) Month(m Month) YearMonth {
	return YearMonth{Year: y, Month: m}
}

// Months yields the twelve months of y in calendar order.
func (y Year) Months() iter.Seq[YearMonth] {
	return func(yield func(YearMonth) bool) {
		for _, m := range months {
			if !yield(y.Month(m)) {
				return
			}
		}
	}
}

// WeeksIn returns the number of ISO 8601 weeks in y, 52 or 53. A year has 53
// weeks if it starts on a Thursday, or if it is a leap year starting on a
// Wednesday.
func (y Year) WeeksIn() int {
	// Calendars repeat every 400 years, so any year works for any Year.
	_, r := splitCycles(int64(y), 400)
	same := 2000 + Year(r)
	jan1 := dateFromUnixDays(daysSinceEpoch(YearMonthDay{Year: same, Month: January, Day: 1}))
	switch {
	case jan1.weekday == Thursday:
		return 53
	case jan1.weekday == Wednesday && same.IsLeap():
		return 53
	}
	return 52
}

// String returns the decimal year number.
func (y Year) String() string {
	return strconv.FormatInt(int64(y), 10)
}

// A YearMonth is a month of a specific year.
type YearMonth struct {
	Year  Year
	Month Month
}

// DayCount returns the number of days in the month. February is resolved
// against the leapness of the year. It is 0 for an undefined Month.
func (ym YearMonth) DayCount() int {
	return ym.Month.DaysIn(ym.Year.IsLeap())
}

// Day returns the given day of the month.
func (ym YearMonth) Day(day int) (Date, error) {
	return YMD(ym.Year, ym.Month, day)
}

// Days yields every day of the month in order.
func (ym YearMonth) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !ym.Month.valid() || !ym.Year.valid() {
			return
		}
		first := dateFromUnixDays(daysSinceEpoch(YearMonthDay{Year: ym.Year, Month: ym.Month, Day: 1}))
		for i, n := 0, ym.DayCount(); i < n; i++ {
			if !yield(first.AddDays(int64(i))) {
				return
			}
		}
	}
}

// String returns ym formatted as "YYYY-MM".
func (ym YearMonth) String() string {
	b := appendYear(nil, ym.Year)
	b = append(b, '-')
	b = appendInt(b, int64(ym.Month), 2)
	return string(b)
}

// A YearMonthDay is a calendar date without derived fields.
//
// A YearMonthDay built outside this package may be invalid (e.g. February
// 30). Only use values obtained from a Date.
type YearMonthDay struct {
	Year  Year
	Month Month
	Day   int8
}

// Compare returns -1, 0 or +1 depending on whether a is before, equal to or
// after b.
func (a YearMonthDay) Compare(b YearMonthDay) int {
	switch {
	case a.Year != b.Year:
		return cmp.Compare(a.Year, b.Year)
	case a.Month != b.Month:
		return cmp.Compare(a.Month, b.Month)
	}
	return cmp.Compare(a.Day, b.Day)
}
