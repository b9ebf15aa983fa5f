// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"math"
	"strconv"
	"time"
)

// An Instant is a point on the time line, counted in seconds and
// milliseconds since 1970-01-01T00:00:00 UTC.
type Instant struct {
	seconds int64
	ms      int16
}

// A Duration is a signed span of time with millisecond precision. Unlike
// time.Duration it can span the whole range of Instant.
type Duration struct {
	seconds int64
	ms      int16
}

// now reads the system clock. Tests replace it.
var now = func() Instant {
	t := time.Now()
	return InstantAtMs(t.Unix(), int64(t.Nanosecond()/1e6))
}

// Now returns the current instant according to the system clock.
func Now() Instant {
	return now()
}

// InstantAt returns the instant seconds after 1970-01-01T00:00:00 UTC.
func InstantAt(seconds int64) Instant {
	return Instant{seconds: seconds}
}

// InstantAtMs returns the instant seconds and ms milliseconds after
// 1970-01-01T00:00:00 UTC. ms may be outside [0, 1000) and carries into the
// seconds.
func InstantAtMs(seconds, ms int64) Instant {
	s, m := normMs(seconds, ms)
	return Instant{seconds: s, ms: m}
}

// InstantOf returns the instant of t, truncated to milliseconds.
func InstantOf(t time.Time) Instant {
	return InstantAtMs(t.Unix(), int64(t.Nanosecond()/1e6))
}

func normMs(seconds, ms int64) (int64, int16) {
	carry, ms := splitCycles(ms, 1000)
	return seconds + carry, int16(ms)
}

// Seconds returns the whole seconds since the Unix epoch, rounded down.
func (i Instant) Seconds() int64 {
	return i.seconds
}

// Milliseconds returns the millisecond of the second, in [0, 1000).
func (i Instant) Milliseconds() int {
	return int(i.ms)
}

// Add returns i+d.
func (i Instant) Add(d Duration) Instant {
	return InstantAtMs(i.seconds+d.seconds, int64(i.ms)+int64(d.ms))
}

// Sub returns i-d.
func (i Instant) Sub(d Duration) Instant {
	return i.Add(d.Neg())
}

// Since returns the duration from j to i.
func (i Instant) Since(j Instant) Duration {
	return DurationOfMs(i.seconds-j.seconds, int64(i.ms)-int64(j.ms))
}

// Compare returns -1 if i is before j, +1 if it is after j and 0 if they are
// equal.
func (i Instant) Compare(j Instant) int {
	if c := cmp.Compare(i.seconds, j.seconds); c != 0 {
		return c
	}
	return cmp.Compare(i.ms, j.ms)
}

// Before reports whether i is before j.
func (i Instant) Before(j Instant) bool {
	return i.Compare(j) < 0
}

// After reports whether i is after j.
func (i Instant) After(j Instant) bool {
	return i.Compare(j) > 0
}

// Std returns i as a time.Time in UTC.
func (i Instant) Std() time.Time {
	return time.Unix(i.seconds, int64(i.ms)*1e6).UTC()
}

// String returns the seconds since the epoch with millisecond precision, like
// "1234567890.123".
func (i Instant) String() string {
	return string(appendSecondsMs(nil, i.seconds, i.ms))
}

// DurationOf returns a duration of the given number of seconds.
func DurationOf(seconds int64) Duration {
	return Duration{seconds: seconds}
}

// DurationOfMs returns a duration of seconds plus ms milliseconds. ms may be
// outside [0, 1000) and carries into the seconds.
func DurationOfMs(seconds, ms int64) Duration {
	s, m := normMs(seconds, ms)
	return Duration{seconds: s, ms: m}
}

// DurationFromStd converts a time.Duration, truncating to milliseconds.
func DurationFromStd(d time.Duration) Duration {
	return DurationOfMs(0, d.Milliseconds())
}

// Lengths returns the seconds and milliseconds of d. The milliseconds are
// always in [0, 1000), so -1.5s is returned as -2s and 500ms.
func (d Duration) Lengths() (seconds int64, ms int) {
	return d.seconds, int(d.ms)
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return DurationOfMs(-d.seconds, -int64(d.ms))
}

// Std returns d as a time.Duration. ok is false if d does not fit.
func (d Duration) Std() (td time.Duration, ok bool) {
	const maxSeconds = math.MaxInt64 / int64(time.Second)
	if d.seconds > maxSeconds-1 || d.seconds < -maxSeconds {
		return 0, false
	}
	return time.Duration(d.seconds)*time.Second + time.Duration(d.ms)*time.Millisecond, true
}

// String returns d in seconds with millisecond precision, like "-1.500s".
func (d Duration) String() string {
	s, ms := d.seconds, d.ms
	var b []byte
	if s < 0 && ms > 0 {
		b = append(b, '-')
		s, ms = -(s + 1), 1000-ms
	} else if s < 0 {
		b = append(b, '-')
		s = -s
	}
	b = appendSecondsMs(b, s, ms)
	return string(append(b, 's'))
}

func appendSecondsMs(b []byte, s int64, ms int16) []byte {
	b = strconv.AppendInt(b, s, 10)
	b = append(b, '.')
	return appendInt(b, int64(ms), 3)
}
