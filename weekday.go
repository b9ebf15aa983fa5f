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

// A Weekday specifies a day of the week.
//
// Two numberings are in common use. WeekdayFromZero counts from Sunday = 0,
// WeekdayFromOne counts from Monday = 1 as ISO 8601 does. Weekday values
// themselves carry no meaningful number.
type Weekday int8

// The days of the week. Monday comes first, as in ISO 8601.
const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// fromSunday is indexed by the number of days since Sunday.
var fromSunday = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// fromMonday is indexed by the number of days since Monday.
var fromMonday = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var longDayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekdayFromZero returns the weekday numbered n, with Sunday as day 0 and
// Saturday as day 6.
func WeekdayFromZero(n int) (Weekday, error) {
	if _, err := rangecheck.Check("weekday", n, 0, 7); err != nil {
		return 0, err
	}
	return fromSunday[n], nil
}

// WeekdayFromOne returns the weekday numbered n, with Monday as day 1 and
// Sunday as day 7.
func WeekdayFromOne(n int) (Weekday, error) {
	if _, err := rangecheck.Check("weekday", n, 1, 8); err != nil {
		return 0, err
	}
	return fromMonday[n-1], nil
}

// WeekdayOf converts a time.Weekday.
func WeekdayOf(d time.Weekday) (Weekday, error) {
	return WeekdayFromZero(int(d))
}

func (d Weekday) valid() bool {
	return Monday <= d && d <= Sunday
}

// DaysFromMondayAsOne returns 1 for Monday, 2 for Tuesday and so on until 7
// for Sunday.
func (d Weekday) DaysFromMondayAsOne() int {
	return int(d-Monday) + 1
}

// DaysFromSunday returns 0 for Sunday, 1 for Monday and so on until 6 for
// Saturday.
func (d Weekday) DaysFromSunday() int {
	return d.DaysFromMondayAsOne() % 7
}

// Std returns d as a time.Weekday.
func (d Weekday) Std() time.Weekday {
	return time.Weekday(d.DaysFromSunday())
}

// String returns the English name of the day ("Monday", "Tuesday", ...).
func (d Weekday) String() string {
	if d.valid() {
		return longDayNames[d-Monday]
	}
	return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
}
