// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"strconv"
	"time"

	"gonih.org/datetime/internal/rangecheck"
)

// A Month specifies a month of the year (January = 1, ...).
//
// Convert numbers to months with MonthFromOne or MonthFromZero, which say
// which numbering is meant, rather than with a type conversion.
type Month int8

// The months of the year.
const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// months is indexed by the number of months since January.
var months = [12]Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins, with m counted from January = 0.
var daysBefore = [12]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

// daysInMonth counts the days of each month in a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var longMonthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthFromOne returns the month numbered n, with January as month 1.
func MonthFromOne(n int) (Month, error) {
	if _, err := rangecheck.Check("month", n, 1, 13); err != nil {
		return 0, err
	}
	return months[n-1], nil
}

// MonthFromZero returns the month numbered n, with January as month 0.
func MonthFromZero(n int) (Month, error) {
	if _, err := rangecheck.Check("month", n, 0, 12); err != nil {
		return 0, err
	}
	return months[n], nil
}

// MonthOf converts a time.Month.
func MonthOf(m time.Month) (Month, error) {
	return MonthFromOne(int(m))
}

func (m Month) valid() bool {
	return January <= m && m <= December
}

// MonthsFromJanuary returns the zero-based index of m.
func (m Month) MonthsFromJanuary() int {
	return int(m - January)
}

// DaysIn returns the number of days in m, depending on whether the year is a
// leap year. It is 0 for an undefined Month.
func (m Month) DaysIn(leap bool) int {
	if !m.valid() {
		return 0
	}
	if m == February && leap {
		return 29
	}
	return daysInMonth[m.MonthsFromJanuary()]
}

// DaysBeforeStart returns the number of days in a non-leap year before m
// begins. It is 0 for an undefined Month.
func (m Month) DaysBeforeStart() int {
	if !m.valid() {
		return 0
	}
	return daysBefore[m.MonthsFromJanuary()]
}

// Std returns m as a time.Month.
func (m Month) Std() time.Month {
	return time.Month(m)
}

// String returns the English name of the month ("January", "February", ...).
func (m Month) String() string {
	if m.valid() {
		return longMonthNames[m.MonthsFromJanuary()]
	}
	return "%!Month(" + strconv.Itoa(int(m)) + ")"
}
