// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// A DateTime is a date and a time of day, without a time zone. It is
// interpreted as UTC when converted to or from an Instant.
//
// Dates reach much further than Instants: every Instant has a DateTime, but
// only date-times within roughly 292 billion years of 1970 have an Instant.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines d and t.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// At returns the date-time seconds after 1970-01-01T00:00:00.
//
// Every int64 is a valid argument. Seconds before the epoch resolve to
// earlier dates, so At(-1) is 1969-12-31T23:59:59.
func At(seconds int64) DateTime {
	return FromInstant(InstantAt(seconds))
}

// AtMs is like At, with an additional number of milliseconds, which may be
// outside [0, 1000).
func AtMs(seconds, ms int64) DateTime {
	return FromInstant(InstantAtMs(seconds, ms))
}

// FromInstant returns the UTC date-time of i.
func FromInstant(i Instant) DateTime {
	// Split off the day first, so the full range of int64 seconds maps to
	// a day count without overflowing.
	days, secs := splitCycles(i.seconds, secondsPerDay)
	return DateTime{
		date: dateFromUnixDays(days),
		time: timeFromSeconds(secs, i.ms),
	}
}

// FromStd returns the date-time of t in UTC, truncated to milliseconds.
func FromStd(t time.Time) DateTime {
	return FromInstant(InstantOf(t))
}

// NowDateTime returns the current date-time in UTC.
func NowDateTime() DateTime {
	return FromInstant(Now())
}

// Instant returns dt as an instant, reading it as UTC. 24:00 is the same
// instant as 00:00 of the following day.
//
// Instant panics if dt is outside the range of Instant. Add, Sub and Std
// convert to an Instant and panic likewise.
func (dt DateTime) Instant() Instant {
	days, secs := dt.normalized()
	if days < minInstantDays || (days == minInstantDays && secs < minInstantSecs) ||
		days > maxInstantDays || (days == maxInstantDays && secs > maxInstantSecs) {
		panic(fmt.Sprintf("datetime: %v is outside the range of Instant", dt))
	}
	// At the lower end the product wraps around, which the addition undoes.
	return Instant{seconds: days*secondsPerDay + secs, ms: dt.time.millisecond}
}

// Day counts and seconds of the first and last Instant.
var (
	minInstantDays, minInstantSecs = splitCycles(math.MinInt64, secondsPerDay)
	maxInstantDays, maxInstantSecs = splitCycles(math.MaxInt64, secondsPerDay)
)

// Date returns the date of dt.
func (dt DateTime) Date() Date {
	return dt.date
}

// Time returns the time of day of dt.
func (dt DateTime) Time() Time {
	return dt.time
}

// Year returns the year of dt.
func (dt DateTime) Year() Year { return dt.date.Year() }

// Month returns the month of dt.
func (dt DateTime) Month() Month { return dt.date.Month() }

// Day returns the day of the month of dt.
func (dt DateTime) Day() int { return dt.date.Day() }

// YearDay returns the day of the year of dt.
func (dt DateTime) YearDay() int { return dt.date.YearDay() }

// Weekday returns the day of the week of dt.
func (dt DateTime) Weekday() Weekday { return dt.date.Weekday() }

// Hour returns the hour of dt.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of dt.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of dt.
func (dt DateTime) Second() int { return dt.time.Second() }

// Millisecond returns the millisecond of dt.
func (dt DateTime) Millisecond() int { return dt.time.Millisecond() }

// Add returns dt+d. The result is normalized, so adding zero to 24:00 yields
// 00:00 of the next day. Use dt.Add(d.Neg()) to subtract a duration.
func (dt DateTime) Add(d Duration) DateTime {
	return FromInstant(dt.Instant().Add(d))
}

// AddSeconds returns the date-time n seconds after dt.
func (dt DateTime) AddSeconds(n int64) DateTime {
	return dt.Add(DurationOf(n))
}

// Sub returns the duration from e to dt.
func (dt DateTime) Sub(e DateTime) Duration {
	return dt.Instant().Since(e.Instant())
}

// Compare returns -1 if dt is before e, +1 if it is after e and 0 if they
// denote the same instant.
func (dt DateTime) Compare(e DateTime) int {
	ad, as := dt.normalized()
	bd, bs := e.normalized()
	if c := cmp.Compare(ad, bd); c != 0 {
		return c
	}
	if c := cmp.Compare(as, bs); c != 0 {
		return c
	}
	return cmp.Compare(dt.time.millisecond, e.time.millisecond)
}

// normalized returns the day count and seconds of dt, with 24:00 moved to the
// next day.
func (dt DateTime) normalized() (days, secs int64) {
	days, secs = dt.date.DaysSinceEpoch(), dt.time.SecondsSinceMidnight()
	if secs == secondsPerDay {
		days, secs = days+1, 0
	}
	return days, secs
}

// Equal reports whether dt and e denote the same instant. Unlike ==, 24:00 of
// a day is equal to 00:00 of the next day.
func (dt DateTime) Equal(e DateTime) bool {
	return dt.Compare(e) == 0
}

// Before reports whether dt is before e.
func (dt DateTime) Before(e DateTime) bool {
	return dt.Compare(e) < 0
}

// After reports whether dt is after e.
func (dt DateTime) After(e DateTime) bool {
	return dt.Compare(e) > 0
}

// Std returns dt as a time.Time in UTC.
func (dt DateTime) Std() time.Time {
	return dt.Instant().Std()
}

// String returns dt formatted as ISODateTime.
func (dt DateTime) String() string {
	return dt.Format(ISODateTime)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (dt DateTime) MarshalText() ([]byte, error) {
	return dt.AppendFormat(nil, ISODateTime), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The value
// must be formatted as ISODateTime.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(ISODateTime, string(b))
	if err == nil {
		*dt = v
	}
	return err
}
