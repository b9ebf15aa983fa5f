// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"golang.org/x/exp/slices"
)

// Day counts come in two flavours. Public APIs count days since the Unix
// epoch, 1970-01-01. Internally, dateFromDays counts from 2000-03-01: 2000 is
// a multiple of 400, and starting the year in March puts the leap day at the
// very end of every 4, 100 and 400 year cycle, so decomposing a day count is
// a matter of plain division.

const (
	// Days in a given period of years.
	daysPer4Years   = 365*4 + 1
	daysPer100Years = 365*100 + 24
	daysPer400Years = 365*400 + 97

	// Leap seconds are ignored.
	secondsPerDay = 24 * 60 * 60

	// Days between 1970-01-01 and 2000-01-01.
	unixTo2000 = 30*365 + 7

	// Days between 1970-01-01 and 2000-03-01.
	epochDifference = unixTo2000 + 31 + 29

	// Days from the start of March to the start of January, in any year.
	daysMarchToJanuary = 306

	// 2000-03-01 was a Wednesday.
	epochWeekday = 3
)

// monthTriangle holds the number of days from the start of March to the end
// of each month, from January of the following year back to March. February
// is left out, as anything beyond the end of January falls into it.
var monthTriangle = [11]int64{
	31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31 + 31, // January
	31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,      // December
	31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,           // November
	31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,                // October
	31 + 30 + 31 + 30 + 31 + 31 + 30,                     // September
	31 + 30 + 31 + 30 + 31 + 31,                          // August
	31 + 30 + 31 + 30 + 31,                               // July
	31 + 30 + 31 + 30,                                    // June
	31 + 30 + 31,                                         // May
	31 + 30,                                              // April
	31,                                                   // March
}

// Unix day counts of the first and last valid dates.
var (
	minUnixDays = daysSinceEpoch(YearMonthDay{Year: MinYear, Month: January, Day: 1})
	maxUnixDays = daysSinceEpoch(YearMonthDay{Year: MaxYear, Month: December, Day: 31})
)

// splitCycles returns cycles, rem such that
//
//	n == cycles*cycle + rem
//	0 <= rem < cycle
//
// cycle must be positive.
func splitCycles(n, cycle int64) (cycles, rem int64) {
	cycles, rem = n/cycle, n%cycle
	if rem < 0 {
		cycles--
		rem += cycle
	}
	return cycles, rem
}

// daysSinceEpoch returns the number of days from 1970-01-01 to ymd.
//
// ymd must be a valid date with a year in [MinYear, MaxYear]. Invalid dates
// give wrong results rather than an error.
func daysSinceEpoch(ymd YearMonthDay) int64 {
	elapsed, leap := ymd.Year.LeapYearCalculations()

	days := 365*(int64(ymd.Year)-2000) + unixTo2000
	// elapsed does not include the leap day of 2000 itself.
	days += elapsed + 1
	days += int64(ymd.Month.DaysBeforeStart())
	if leap && ymd.Month >= March {
		days++
	}
	return days + int64(ymd.Day) - 1
}

// dateFromUnixDays returns the date the given number of days after
// 1970-01-01. days must be in [minUnixDays, maxUnixDays].
func dateFromUnixDays(days int64) Date {
	return dateFromDays(days - epochDifference)
}

// dateFromDays returns the date the given number of days after 2000-03-01.
func dateFromDays(days int64) Date {
	c400, rem := splitCycles(days, daysPer400Years)

	// The last day of a 400 year cycle is a leap day, which would otherwise
	// be counted as the start of a fifth 100 year cycle. The same goes for
	// the last day of a 4 year cycle and a fourth year.
	c100 := min(rem/daysPer100Years, 3)
	rem -= c100 * daysPer100Years

	c4 := rem / daysPer4Years
	rem -= c4 * daysPer4Years

	y := min(rem/365, 3)
	rem -= y * 365

	// rem now counts days since March 1 of year.
	year := 2000 + 400*c400 + 100*c100 + 4*c4 + y

	// Whether the January based year containing March 1 is a leap year.
	var daysThisYear int64 = 365
	if y == 0 && (c4 != 0 || c100 == 0) {
		daysThisYear = 366
	}
	yday := rem + daysThisYear - daysMarchToJanuary
	if yday >= daysThisYear {
		// January or February of the following year.
		yday -= daysThisYear
	}

	month, mday := int64(0), rem
	if i := slices.IndexFunc(monthTriangle[:], func(d int64) bool { return d <= rem }); i >= 0 {
		month, mday = int64(len(monthTriangle)-i), rem-monthTriangle[i]
	}
	// month counts from March, re-base it on January.
	month += 2
	if month >= 12 {
		year++
		month -= 12
	}

	return Date{
		ymd: YearMonthDay{
			Year:  Year(year),
			Month: months[month],
			Day:   int8(mday + 1),
		},
		yearday: int16(yday + 1),
		weekday: weekdayFromDays(days),
	}
}

// weekdayFromDays returns the day of the week the given number of days after
// 2000-03-01.
func weekdayFromDays(days int64) Weekday {
	_, wd := splitCycles(days+epochWeekday, 7)
	return fromSunday[wd]
}
