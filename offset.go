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

// An Offset is either UTC or a fixed offset from UTC, in seconds.
//
// A fixed offset of zero is distinct from UTC: it formats as "+00:00" rather
// than "Z". The zero Offset is UTC.
type Offset struct {
	seconds int32
	fixed   bool
}

// UTC returns the UTC offset.
func UTC() Offset {
	return Offset{}
}

// OffsetOfSeconds returns the fixed offset of the given number of seconds
// east of UTC. seconds must be in [-86400, 86400].
func OffsetOfSeconds(seconds int) (Offset, error) {
	if _, err := rangecheck.Check("offset", seconds, -secondsPerDay, secondsPerDay+1); err != nil {
		return Offset{}, err
	}
	return Offset{seconds: int32(seconds), fixed: true}, nil
}

// OffsetOfHoursAndMinutes returns the fixed offset of the given hours and
// minutes. Both must have the same sign, so -3:30 is written as (-3, -30).
func OffsetOfHoursAndMinutes(hours, minutes int) (Offset, error) {
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		return Offset{}, ErrSignMismatch
	}
	if _, err := rangecheck.Check("hours", hours, -23, 24); err != nil {
		return Offset{}, err
	}
	if _, err := rangecheck.Check("minutes", minutes, -59, 60); err != nil {
		return Offset{}, err
	}
	return OffsetOfSeconds(hours*3600 + minutes*60)
}

// ParseOffset parses "Z" or a signed offset of the form "+hh", "+hh:mm" or
// "+hh:mm:ss".
func ParseOffset(s string) (Offset, error) {
	p := parser{value: s}
	p.setInst(inst{op: opOffset})
	o := p.offset(true)
	if p.hasErr {
		return Offset{}, p.err("Z07:00", s, "")
	}
	if p.value != "" {
		return Offset{}, p.err("Z07:00", s, "extra text: "+strconv.Quote(p.value))
	}
	return o, nil
}

// IsUTC reports whether o is UTC, as opposed to a fixed offset.
func (o Offset) IsUTC() bool {
	return !o.fixed
}

// IsNegative reports whether o is west of UTC.
func (o Offset) IsNegative() bool {
	return o.seconds < 0
}

// Hours returns the whole hours of o. It has the sign of o.
func (o Offset) Hours() int {
	return int(o.seconds / 3600)
}

// Minutes returns the minutes of o beyond its whole hours. It has the sign
// of o.
func (o Offset) Minutes() int {
	return int(o.seconds / 60 % 60)
}

// Seconds returns the seconds of o beyond its whole minutes. It has the sign
// of o.
func (o Offset) Seconds() int {
	return int(o.seconds % 60)
}

// TotalSeconds returns o in seconds east of UTC.
func (o Offset) TotalSeconds() int {
	return int(o.seconds)
}

// Location returns a time.Location with the offset o.
func (o Offset) Location() *time.Location {
	if o.IsUTC() {
		return time.UTC
	}
	return time.FixedZone(o.String(), int(o.seconds))
}

// Transform returns the local date-time at offset o of the UTC date-time utc.
func (o Offset) Transform(utc DateTime) OffsetDateTime {
	return OffsetDateTime{utc: utc, offset: o}
}

// FromLocal returns the OffsetDateTime whose local wall time at offset o is
// local.
func (o Offset) FromLocal(local DateTime) OffsetDateTime {
	if o.seconds == 0 {
		return OffsetDateTime{utc: local, offset: o}
	}
	return OffsetDateTime{utc: local.AddSeconds(-int64(o.seconds)), offset: o}
}

// String returns "Z" for UTC. A fixed offset is written as "+hh", with
// minutes and seconds appended only if they are not zero, e.g. "+05:30" or
// "-03:45:10".
func (o Offset) String() string {
	if o.IsUTC() {
		return "Z"
	}
	b := appendOffsetSign(nil, o)
	b = appendInt(b, int64(abs(o.Hours())), 2)
	if o.seconds%3600 != 0 {
		b = append(b, ':')
		b = appendInt(b, int64(abs(o.Minutes())), 2)
	}
	if o.seconds%60 != 0 {
		b = append(b, ':')
		b = appendInt(b, int64(abs(o.Seconds())), 2)
	}
	return string(b)
}

func appendOffsetSign(b []byte, o Offset) []byte {
	if o.IsNegative() {
		return append(b, '-')
	}
	return append(b, '+')
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// An OffsetDateTime is a date-time at a fixed offset from UTC.
//
// Its accessors return the local wall time, that is the UTC date-time
// shifted by the offset.
type OffsetDateTime struct {
	utc    DateTime
	offset Offset
}

// UTC returns the date-time in UTC.
func (odt OffsetDateTime) UTC() DateTime {
	return odt.utc
}

// Local returns the wall time at the offset.
func (odt OffsetDateTime) Local() DateTime {
	if odt.offset.seconds == 0 {
		return odt.utc
	}
	return odt.utc.AddSeconds(int64(odt.offset.seconds))
}

// Offset returns the offset of odt.
func (odt OffsetDateTime) Offset() Offset {
	return odt.offset
}

// In returns the same instant at a different offset.
func (odt OffsetDateTime) In(o Offset) OffsetDateTime {
	return OffsetDateTime{utc: odt.utc, offset: o}
}

// Instant returns the instant denoted by odt.
func (odt OffsetDateTime) Instant() Instant {
	return odt.utc.Instant()
}

// Date returns the local date.
func (odt OffsetDateTime) Date() Date { return odt.Local().Date() }

// Time returns the local time of day.
func (odt OffsetDateTime) Time() Time { return odt.Local().Time() }

// Year returns the local year.
func (odt OffsetDateTime) Year() Year { return odt.Local().Year() }

// Month returns the local month.
func (odt OffsetDateTime) Month() Month { return odt.Local().Month() }

// Day returns the local day of the month.
func (odt OffsetDateTime) Day() int { return odt.Local().Day() }

// YearDay returns the local day of the year.
func (odt OffsetDateTime) YearDay() int { return odt.Local().YearDay() }

// Weekday returns the local day of the week.
func (odt OffsetDateTime) Weekday() Weekday { return odt.Local().Weekday() }

// Hour returns the local hour.
func (odt OffsetDateTime) Hour() int { return odt.Local().Hour() }

// Minute returns the local minute.
func (odt OffsetDateTime) Minute() int { return odt.Local().Minute() }

// Second returns the local second.
func (odt OffsetDateTime) Second() int { return odt.Local().Second() }

// Millisecond returns the millisecond.
func (odt OffsetDateTime) Millisecond() int { return odt.utc.Millisecond() }

// Compare compares the instants of odt and e, ignoring their offsets.
func (odt OffsetDateTime) Compare(e OffsetDateTime) int {
	return odt.utc.Compare(e.utc)
}

// Equal reports whether odt and e denote the same instant.
func (odt OffsetDateTime) Equal(e OffsetDateTime) bool {
	return odt.Compare(e) == 0
}

// Std returns odt as a time.Time in a fixed zone.
func (odt OffsetDateTime) Std() time.Time {
	return odt.utc.Std().In(odt.offset.Location())
}

// String returns odt formatted as ISOOffsetDateTime.
func (odt OffsetDateTime) String() string {
	return odt.Format(ISOOffsetDateTime)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (odt OffsetDateTime) MarshalText() ([]byte, error) {
	return odt.AppendFormat(nil, ISOOffsetDateTime), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The value
// must be formatted as ISOOffsetDateTime.
func (odt *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := ParseOffsetDateTime(ISOOffsetDateTime, string(b))
	if err == nil {
		*odt = v
	}
	return err
}
