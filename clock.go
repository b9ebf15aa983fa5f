// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"

	"gonih.org/datetime/internal/rangecheck"
)

// A Time is a time of day with millisecond precision, without a date or a
// time zone.
//
// Besides 00:00:00.000 to 23:59:59.999 a Time can be 24:00:00.000, the end of
// the day. When converted to an Instant, 24:00 on some date is the same
// instant as 00:00 on the following date.
type Time struct {
	hour        int8
	minute      int8
	second      int8
	millisecond int16
}

// Midnight returns 00:00:00.000.
func Midnight() Time {
	return Time{}
}

// EndOfDay returns 24:00:00.000.
func EndOfDay() Time {
	return Time{hour: 24}
}

// HM returns the time with the given hour and minute.
func HM(hour, minute int) (Time, error) {
	return HMSMs(hour, minute, 0, 0)
}

// HMS returns the time with the given hour, minute and second.
func HMS(hour, minute, second int) (Time, error) {
	return HMSMs(hour, minute, second, 0)
}

// HMSMs returns the time with the given hour, minute, second and
// millisecond.
//
// hour must be in [0, 24), minute and second in [0, 60) and millisecond in
// [0, 1000). Hour 24 is accepted if all other fields are zero.
func HMSMs(hour, minute, second, millisecond int) (Time, error) {
	if hour == 24 && minute == 0 && second == 0 && millisecond == 0 {
		return EndOfDay(), nil
	}
	if _, err := rangecheck.Check("hour", hour, 0, 24); err != nil {
		return Time{}, err
	}
	if _, err := rangecheck.Check("minute", minute, 0, 60); err != nil {
		return Time{}, err
	}
	if _, err := rangecheck.Check("second", second, 0, 60); err != nil {
		return Time{}, err
	}
	if _, err := rangecheck.Check("millisecond", millisecond, 0, 1000); err != nil {
		return Time{}, err
	}
	return Time{
		hour:        int8(hour),
		minute:      int8(minute),
		second:      int8(second),
		millisecond: int16(millisecond),
	}, nil
}

// TimeFromSecondsSinceMidnight returns the time secs seconds and ms
// milliseconds after midnight. secs must be in [0, 86400) and ms in
// [0, 1000), except that 86400 seconds is the end of the day.
func TimeFromSecondsSinceMidnight(secs int64, ms int) (Time, error) {
	if secs == secondsPerDay && ms == 0 {
		return EndOfDay(), nil
	}
	if _, err := rangecheck.Check("seconds since midnight", secs, 0, secondsPerDay); err != nil {
		return Time{}, err
	}
	if _, err := rangecheck.Check("millisecond", ms, 0, 1000); err != nil {
		return Time{}, err
	}
	return timeFromSeconds(secs, int16(ms)), nil
}

// timeFromSeconds splits a number of seconds since midnight into its fields.
// secs must be in [0, secondsPerDay) and ms in [0, 1000).
func timeFromSeconds(secs int64, ms int16) Time {
	return Time{
		hour:        int8(secs / 3600),
		minute:      int8(secs / 60 % 60),
		second:      int8(secs % 60),
		millisecond: ms,
	}
}

// Hour returns the hour of t, in [0, 24].
func (t Time) Hour() int {
	return int(t.hour)
}

// Minute returns the minute of t.
func (t Time) Minute() int {
	return int(t.minute)
}

// Second returns the second of t.
func (t Time) Second() int {
	return int(t.second)
}

// Millisecond returns the millisecond of t.
func (t Time) Millisecond() int {
	return int(t.millisecond)
}

// IsEndOfDay reports whether t is 24:00:00.000.
func (t Time) IsEndOfDay() bool {
	return t.hour == 24
}

// SecondsSinceMidnight returns the number of whole seconds from midnight to
// t. It is 86400 for the end of the day.
func (t Time) SecondsSinceMidnight() int64 {
	return int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
}

// Compare returns -1 if t is before u, +1 if it is after u and 0 if they are
// equal.
func (t Time) Compare(u Time) int {
	if c := cmp.Compare(t.SecondsSinceMidnight(), u.SecondsSinceMidnight()); c != 0 {
		return c
	}
	return cmp.Compare(t.millisecond, u.millisecond)
}

// String returns t formatted as ISO 8601, with milliseconds.
func (t Time) String() string {
	return t.Format(ISOTime)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Time) MarshalText() ([]byte, error) {
	return t.AppendFormat(nil, ISOTime), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The time
// must be formatted as ISOTime.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(ISOTime, string(b))
	if err == nil {
		*t = v
	}
	return err
}
